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

// finalSweep is §4.F step 6: after expansion, flattening and dependency
// resolution have all run (any of which may have dropped an optional field
// whose trigger went unsatisfied), confirm every field still required by
// arity is still present. CheckInstance already validated shape and
// constraints pre-expansion; this pass only re-checks presence, since
// resolution only ever removes keys, never rewrites a leaf's kind.
func finalSweep(m *model.Model, root, scope *value.Value) errors.List {
	var list errors.List
	if scope.Kind() != value.ObjectKind {
		return list
	}
	for _, bt := range m.Body {
		fv := scope.Get(bt.Name())
		if fv == nil {
			if bt.ArityAttr().Lo > 0 {
				list.Addf(scope.Path(), scope.Pos(), "required field %q missing after resolution", bt.Name())
			}
			continue
		}
		list = append(list, sweepRecurse(m, root, bt, fv)...)
	}
	return list
}

func sweepRecurse(m *model.Model, root *value.Value, bt types.BasicType, fv *value.Value) errors.List {
	var list errors.List
	switch t := bt.(type) {
	case *types.ClassType:
		sub := m.ResolveInclude(t.ModelName)
		if sub == nil {
			return nil
		}
		for _, obj := range classElements(fv) {
			list = append(list, finalSweep(sub, root, obj)...)
		}
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
			list = append(list, finalSweep(sub, root, obj)...)
		}
	}
	return list
}
