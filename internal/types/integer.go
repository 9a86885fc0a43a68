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
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// IntegerType is a RangedType<int64> (§4.E): adds range and default.
// Integers are stored as 64-bit throughout (§9 Open Questions: "The spec
// mandates 64-bit integers throughout").
type IntegerType struct {
	Base
	rangeAttr *attribute.FloatRange
}

func NewInteger(name string) *IntegerType {
	return &IntegerType{Base: NewBase(Integer, name), rangeAttr: attribute.NewFloatRange().(*attribute.FloatRange)}
}

func (t *IntegerType) CollectIncludes() []string { return nil }

func (t *IntegerType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	if schema != nil {
		if r := schema.Get("range"); r != nil {
			if err := t.rangeAttr.CheckModel(r); err != nil {
				list.Addf(r.Path(), r.Pos(), "range: %v", err)
			} else if err := t.rangeAttr.LoadModel(r); err != nil {
				list.Addf(r.Path(), r.Pos(), "range: %v", err)
			}
		}
	}
	return list
}

func (t *IntegerType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	var pr *attribute.FloatRange
	if pt, ok := parent.(*IntegerType); ok {
		p = &pt.Base
		pr = pt.rangeAttr
	}
	list := t.FlattenCommon(p)
	if pr != nil && !t.rangeAttr.Merge(pr) {
		list.Addf(t.Path(), token.NoPos, "range conflicts with inherited range")
	}
	return list
}

func (t *IntegerType) ValidateModel() errors.List {
	var list errors.List
	if def := t.Default(); def != nil {
		i, ok := def.Int()
		if !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be an integer")
		} else if !t.rangeAttr.Value().Contains(float64(i)) {
			list.Addf(t.Path(), def.Pos(), "default value %d is out of range %s", i, t.rangeAttr.Value())
		}
	}
	return list
}

func (t *IntegerType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.IntKind {
		list.Addf(v.Path(), v.Pos(), "expected an integer, got %s", v.Kind())
		return list
	}
	list = append(list, t.rangeAttr.Validate(root, v)...)
	return list
}

func (t *IntegerType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *IntegerType) FlattenInstance(root, v *value.Value) errors.List { return nil }

func (t *IntegerType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *IntegerType) Clone() BasicType {
	c := *t
	r := *t.rangeAttr
	c.rangeAttr = &r
	return &c
}
