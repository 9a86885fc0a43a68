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

// depChecker is the subset of types.Base's promoted method set every
// BasicType exposes; resolving against this interface rather than the
// concrete types avoids a type switch over all twelve kinds.
type depChecker interface {
	ResolveDeps(root, scope *value.Value) bool
}

// Resolve is §4.F step 5: "resolveInstance(root, root): dependency
// predicates and hooks." Dependency evaluation walks m.Body directly
// (rather than through each BasicType's own no-op ResolveInstance, since
// dropping a field requires mutating its owning scope, which only the
// orchestrator holds) then applies m's own hooks over the resulting tree.
func Resolve(m *model.Model, root, scope *value.Value) errors.List {
	var list errors.List
	for _, bt := range m.Body {
		fv := scope.Get(bt.Name())
		if fv == nil {
			continue
		}
		list = append(list, bt.ResolveInstance(root, fv)...)

		dc, ok := bt.(depChecker)
		if !ok || len(bt.Deps()) == 0 {
			list = append(list, resolveRecurse(m, root, bt, fv)...)
			continue
		}
		if dc.ResolveDeps(root, scope) {
			list = append(list, resolveRecurse(m, root, bt, fv)...)
			continue
		}
		if bt.ArityAttr().Lo > 0 {
			list.Addf(fv.Path(), fv.Pos(), "required field %q: dependency predicate not satisfied", bt.Name())
			continue
		}
		scope.Delete(bt.Name())
	}
	if err := applyHooks(m, root, scope); err != nil {
		list.Addf(scope.Path(), scope.Pos(), "%v", err)
	}
	return list
}

func resolveRecurse(m *model.Model, root *value.Value, bt types.BasicType, fv *value.Value) errors.List {
	var list errors.List
	switch t := bt.(type) {
	case *types.ClassType:
		sub := m.ResolveInclude(t.ModelName)
		if sub == nil {
			return nil
		}
		for _, obj := range classElements(fv) {
			list = append(list, Resolve(sub, root, obj)...)
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
			list = append(list, Resolve(sub, root, obj)...)
		}
	}
	return list
}
