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

// Check is §4.F step 2: "checkInstance(root, root): recursive structural/
// type check". scope is the object this Model's body is read relative to;
// root is always the document root, threaded through for Global-anchored
// dependency and hook paths.
func Check(m *model.Model, root, scope *value.Value) errors.List {
	var list errors.List
	if scope.Kind() != value.ObjectKind {
		list.Addf(scope.Path(), scope.Pos(), "expected an object, got %s", scope.Kind())
		return list
	}

	known := map[string]bool{}
	for _, bt := range m.Body {
		known[bt.Name()] = true
		fv := scope.Get(bt.Name())
		if fv == nil {
			list = append(list, bt.CheckInstance(root, fv)...)
			continue
		}
		// Arity is checked on the value as written, before expansion wraps
		// a singleton or unwraps a one-element array; an array's elements
		// are each checked against the type on their own.
		size := 1
		if fv.Kind() == value.ArrayKind {
			size = fv.Len()
			for _, el := range fv.Array() {
				list = append(list, bt.CheckInstance(root, el)...)
			}
		} else {
			list = append(list, bt.CheckInstance(root, fv)...)
		}
		if a := bt.ArityAttr(); !a.Check(size) {
			list.Addf(fv.Path(), fv.Pos(), "arity violation: %d value(s), expected %s", size, a)
		}
		list = append(list, checkRecurse(m, root, bt, fv)...)
	}
	for _, key := range scope.Keys() {
		if !known[key] {
			child := scope.Get(key)
			list.Addf(child.Path(), child.Pos(), "unknown field %q", key)
		}
	}
	return list
}

// checkRecurse descends into a Class or Selector field's referenced
// Model(s); every other kind is a leaf as far as §4.G's object-level
// walk is concerned.
func checkRecurse(m *model.Model, root *value.Value, bt types.BasicType, fv *value.Value) errors.List {
	var list errors.List
	switch t := bt.(type) {
	case *types.ClassType:
		sub := m.ResolveInclude(t.ModelName)
		if sub == nil {
			list.Addf(fv.Path(), fv.Pos(), "class %q: no such included model", t.ModelName)
			return list
		}
		for _, obj := range classElements(fv) {
			list = append(list, Check(sub, root, obj)...)
		}
	case *types.SelectorType:
		for _, obj := range classElements(fv) {
			if obj.Kind() != value.ObjectKind {
				continue
			}
			disc := obj.Get(t.Discriminant)
			if disc == nil {
				continue // already reported by SelectorType.CheckInstance
			}
			s, ok := disc.Scalar()
			if !ok {
				continue
			}
			branchName, ok := t.Branch(s)
			if !ok {
				continue // already reported by SelectorType.CheckInstance
			}
			sub := m.ResolveInclude(branchName)
			if sub == nil {
				list.Addf(fv.Path(), fv.Pos(), "selector branch %q: no such included model", branchName)
				continue
			}
			list = append(list, Check(sub, root, obj)...)
		}
	}
	return list
}

// classElements normalizes a Class/Selector field's value to the set of
// object instances it holds, whether the field is a single object (arity
// 1) or an array of objects (multi-arity, §4.E "a list of clones").
func classElements(v *value.Value) []*value.Value {
	switch v.Kind() {
	case value.ObjectKind:
		return []*value.Value{v}
	case value.ArrayKind:
		return v.Array()
	default:
		return nil
	}
}
