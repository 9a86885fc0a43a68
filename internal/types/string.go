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

// StringType is an EnumeratedType<string> (§4.E): adds either, default,
// length and arity.
type StringType struct {
	Base
	eitherAttr *attribute.Either
	lengthAttr *attribute.Length
}

func NewString(name string) *StringType {
	return &StringType{
		Base:       NewBase(String, name),
		eitherAttr: attribute.NewEither().(*attribute.Either),
		lengthAttr: attribute.NewLength().(*attribute.Length),
	}
}

func (t *StringType) CollectIncludes() []string { return nil }

func (t *StringType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	if schema != nil {
		if e := schema.Get("either"); e != nil {
			if err := t.eitherAttr.CheckModel(e); err != nil {
				list.Addf(e.Path(), e.Pos(), "either: %v", err)
			} else if err := t.eitherAttr.LoadModel(e); err != nil {
				list.Addf(e.Path(), e.Pos(), "either: %v", err)
			}
		}
		if l := schema.Get("length"); l != nil {
			if err := t.lengthAttr.CheckModel(l); err != nil {
				list.Addf(l.Path(), l.Pos(), "length: %v", err)
			} else if err := t.lengthAttr.LoadModel(l); err != nil {
				list.Addf(l.Path(), l.Pos(), "length: %v", err)
			}
		}
	}
	return list
}

func (t *StringType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	var pe *attribute.Either
	var pl *attribute.Length
	if pt, ok := parent.(*StringType); ok {
		p = &pt.Base
		pe = pt.eitherAttr
		pl = pt.lengthAttr
	}
	list := t.FlattenCommon(p)
	if pe != nil && !t.eitherAttr.Merge(pe) {
		list.Addf(t.Path(), token.NoPos, "either conflicts with inherited either")
	}
	if pl != nil && !t.lengthAttr.Merge(pl) {
		list.Addf(t.Path(), token.NoPos, "length conflicts with inherited length")
	}
	return list
}

func (t *StringType) ValidateModel() errors.List {
	var list errors.List
	if def := t.Default(); def != nil {
		s, ok := def.String()
		if !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be a string")
		} else if violations := t.eitherAttr.Validate(nil, def); len(violations) > 0 {
			list.Addf(t.Path(), def.Pos(), "default value %q is not one of %v", s, t.eitherAttr.Values())
		}
	}
	return list
}

func (t *StringType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	list = append(list, t.eitherAttr.Validate(root, v)...)
	list = append(list, t.lengthAttr.Validate(root, v)...)
	return list
}

func (t *StringType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *StringType) FlattenInstance(root, v *value.Value) errors.List { return nil }

func (t *StringType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *StringType) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	l := *t.lengthAttr
	c.lengthAttr = &l
	return &c
}
