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

// FloatType is a RangedType<float64>, identical in shape to IntegerType
// but accepting both int- and float-kinded instance leaves (§4.A: "offers
// is<T>/value<T> introspection" — Float widens Int).
type FloatType struct {
	Base
	rangeAttr *attribute.FloatRange
}

func NewFloat(name string) *FloatType {
	return &FloatType{Base: NewBase(Float, name), rangeAttr: attribute.NewFloatRange().(*attribute.FloatRange)}
}

func (t *FloatType) CollectIncludes() []string { return nil }

func (t *FloatType) LoadModel(schema *value.Value) errors.List {
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

func (t *FloatType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	var pr *attribute.FloatRange
	if pt, ok := parent.(*FloatType); ok {
		p = &pt.Base
		pr = pt.rangeAttr
	}
	list := t.FlattenCommon(p)
	if pr != nil && !t.rangeAttr.Merge(pr) {
		list.Addf(t.Path(), token.NoPos, "range conflicts with inherited range")
	}
	return list
}

func (t *FloatType) ValidateModel() errors.List {
	var list errors.List
	if def := t.Default(); def != nil {
		f, ok := def.Float()
		if !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be numeric")
		} else if !t.rangeAttr.Value().Contains(f) {
			list.Addf(t.Path(), def.Pos(), "default value %v is out of range %s", f, t.rangeAttr.Value())
		}
	}
	return list
}

func (t *FloatType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.FloatKind && v.Kind() != value.IntKind {
		list.Addf(v.Path(), v.Pos(), "expected a float, got %s", v.Kind())
		return list
	}
	list = append(list, t.rangeAttr.Validate(root, v)...)
	return list
}

func (t *FloatType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *FloatType) FlattenInstance(root, v *value.Value) errors.List { return nil }

func (t *FloatType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *FloatType) Clone() BasicType {
	c := *t
	r := *t.rangeAttr
	c.rangeAttr = &r
	return &c
}
