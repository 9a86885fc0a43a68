// Copyright 2024 The ACE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package instance

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/types"
	"go.aceconf.dev/ace/internal/value"
)

// Expand is §4.F step 3: "expandInstance(root, root): defaults, arity
// unfolding, template expansion for Class clones". It mutates scope in
// place, Put-ing back each field's (possibly newly-created) value, and
// returns scope for chaining.
func Expand(m *model.Model, root, scope *value.Value) (*value.Value, errors.List) {
	var list errors.List
	for _, bt := range m.Body {
		fv := scope.Get(bt.Name())
		expanded, elist := bt.ExpandInstance(root, fv)
		list = append(list, elist...)
		if expanded == nil {
			continue
		}
		scope.Put(bt.Name(), expanded)
		if sub, slist := expandRecurse(m, root, bt, expanded); slist != nil || sub {
			list = append(list, slist...)
		}
	}
	return scope, list
}

func expandRecurse(m *model.Model, root *value.Value, bt types.BasicType, fv *value.Value) (bool, errors.List) {
	var list errors.List
	switch t := bt.(type) {
	case *types.ClassType:
		sub := m.ResolveInclude(t.ModelName)
		if sub == nil {
			return false, nil
		}
		for _, obj := range classElements(fv) {
			_, elist := Expand(sub, root, obj)
			list = append(list, elist...)
		}
		return true, list
	case *types.SelectorType:
		for _, obj := range classElements(fv) {
			if obj.Kind() != value.ObjectKind {
				continue
			}
			disc := obj.Get(t.Discriminant)
			if disc == nil {
				continue
			}
			s, ok := disc.Scalar()
			if !ok {
				continue
			}
			branchName, ok := t.Branch(s)
			if !ok {
				continue
			}
			sub := m.ResolveInclude(branchName)
			if sub == nil {
				continue
			}
			_, elist := Expand(sub, root, obj)
			list = append(list, elist...)
		}
		return true, list
	default:
		return false, nil
	}
}
