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

package value

import "go.aceconf.dev/ace/internal/path"

// Walk addresses the descendant(s) of root named by p (§4.B: "Walking a
// path against a value yields the addressed descendant(s); wildcards
// produce multiple results"). A Global anchor always starts from root; a
// Local anchor starts from scope (the value representing "here", typically
// the object holding the field that declared the path).
func Walk(root, scope *Value, p path.Path) []*Value {
	start := scope
	if p.Anchor == path.Global {
		start = root
	}
	cur := []*Value{start}
	for _, it := range p.Items {
		var next []*Value
		for _, v := range cur {
			next = append(next, step(v, it)...)
		}
		cur = next
		if len(cur) == 0 {
			return nil
		}
	}
	return cur
}

func step(v *Value, it path.Item) []*Value {
	switch it.Kind {
	case path.Named:
		if v.Kind() != ObjectKind {
			return nil
		}
		if child := v.Get(it.Name); child != nil {
			return []*Value{child}
		}
		return nil
	case path.Indexed:
		if v.Kind() != ArrayKind {
			return nil
		}
		arr := v.Array()
		if it.Index < 0 || it.Index >= len(arr) {
			return nil
		}
		return []*Value{arr[it.Index]}
	case path.Any:
		switch v.Kind() {
		case ObjectKind:
			return v.Object().Values()
		case ArrayKind:
			return append([]*Value(nil), v.Array()...)
		default:
			return nil
		}
	default:
		return nil
	}
}
