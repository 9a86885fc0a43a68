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

// EnumType is a string-backed EnumeratedType whose either-set is required
// (§4.E): unlike a plain String with an optional either, an enum field is
// meaningless without a closed value set.
type EnumType struct {
	Base
	eitherAttr *attribute.Either
}

func NewEnum(name string) *EnumType {
	return &EnumType{Base: NewBase(Enum, name), eitherAttr: attribute.NewEither().(*attribute.Either)}
}

func (t *EnumType) CollectIncludes() []string { return nil }

func (t *EnumType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	e := schema.Get("either")
	if e == nil {
		list.Addf(t.Path(), schema.Pos(), "enum type requires an \"either\" attribute")
		return list
	}
	if err := t.eitherAttr.CheckModel(e); err != nil {
		list.Addf(e.Path(), e.Pos(), "either: %v", err)
		return list
	}
	if err := t.eitherAttr.LoadModel(e); err != nil {
		list.Addf(e.Path(), e.Pos(), "either: %v", err)
	}
	return list
}

func (t *EnumType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*EnumType); ok {
		p = &pt.Base
		t.eitherAttr.Merge(pt.eitherAttr)
	}
	return t.FlattenCommon(p)
}

func (t *EnumType) ValidateModel() errors.List {
	var list errors.List
	if len(t.eitherAttr.Values()) == 0 {
		list.Addf(t.Path(), token.NoPos, "either-set must not be empty")
	}
	if def := t.Default(); def != nil {
		if s, ok := def.String(); !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be a string")
		} else if violations := t.eitherAttr.Validate(nil, def); len(violations) > 0 {
			list.Addf(t.Path(), def.Pos(), "default value %q is not one of %v", s, t.eitherAttr.Values())
		}
	}
	return list
}

func (t *EnumType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	return t.eitherAttr.Validate(root, v)
}

func (t *EnumType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *EnumType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *EnumType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *EnumType) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	return &c
}
