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

// BooleanType is the simplest BasicType: a leaf with no attributes beyond
// the common ones (§4.E).
type BooleanType struct {
	Base
}

func NewBoolean(name string) *BooleanType {
	return &BooleanType{Base: NewBase(Boolean, name)}
}

func (t *BooleanType) CollectIncludes() []string { return nil }

func (t *BooleanType) LoadModel(schema *value.Value) errors.List {
	return t.LoadCommon(schema)
}

func (t *BooleanType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*BooleanType); ok {
		p = &pt.Base
	}
	return t.FlattenCommon(p)
}

func (t *BooleanType) ValidateModel() errors.List {
	var list errors.List
	if def := t.Default(); def != nil {
		if _, ok := def.Bool(); !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be a boolean")
		}
	}
	return list
}

func (t *BooleanType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.BoolKind {
		list.Addf(v.Path(), v.Pos(), "expected a boolean, got %s", v.Kind())
	}
	return list
}

func (t *BooleanType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *BooleanType) FlattenInstance(root, v *value.Value) errors.List { return nil }

func (t *BooleanType) ResolveInstance(root, v *value.Value) errors.List {
	return nil
}

func (t *BooleanType) Clone() BasicType {
	c := *t
	return &c
}
