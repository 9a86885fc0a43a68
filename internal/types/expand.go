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

package types

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/value"
)

// expandLeaf implements default-insertion and arity unfolding (§4.G
// "Arity unfolding") shared by every scalar and format-checked kind. Class
// and Selector reuse the same unfolding rule for their object elements.
func expandLeaf(t BasicType, root, v *value.Value) (*value.Value, errors.List) {
	var list errors.List

	if v == nil {
		def := t.Default()
		if def == nil {
			if t.ArityAttr().Lo > 0 {
				list.Addf(t.Path(), root.Pos(), "missing required field")
			}
			return nil, list
		}
		v = cloneDefault(def)
	}

	a := t.ArityAttr()
	switch {
	case v.Kind() == value.ArrayKind:
		if a.Hi == 1 && !a.Unbounded {
			if v.Len() == 1 {
				return v.Array()[0], list
			}
			// size != 1 against a single-valued arity is reported by
			// the arity check in internal/instance's Check, which runs
			// before expansion; leave the array as-is.
			return v, list
		}
		return v, list
	default:
		if a.Hi > 1 || a.Unbounded {
			wrapper := value.NewArray()
			wrapper.Push(v)
			return wrapper, list
		}
		return v, list
	}
}

// cloneDefault produces a detached copy of a schema-provided default so
// that repeated expansions (or multiple Class clones) never alias the same
// node, matching the value tree's single-parent invariant (§3).
func cloneDefault(v *value.Value) *value.Value {
	switch v.Kind() {
	case value.BoolKind:
		b, _ := v.Bool()
		return value.NewBool(b)
	case value.IntKind:
		i, _ := v.Int()
		return value.NewInt(i)
	case value.FloatKind:
		f, _ := v.Float()
		return value.NewFloat(f)
	case value.StringKind:
		s, _ := v.String()
		return value.NewString(s)
	case value.ArrayKind:
		out := value.NewArray()
		for _, el := range v.Array() {
			out.Push(cloneDefault(el))
		}
		return out
	case value.ObjectKind:
		out := value.NewObject()
		for _, k := range v.Keys() {
			out.Put(k, cloneDefault(v.Get(k)))
		}
		return out
	default:
		return v
	}
}
