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
	"go.aceconf.dev/ace/token"
)

// ClassType is a compound BasicType whose schema is another, named Model
// (§3: "a Class has a model reference ... and a list of clones, one per
// resolved Class instance during expansion"). ClassType itself stores only
// the reference — the name of the included Model — never a pointer to a
// loaded Model, so that this package never imports internal/model (which
// in turn imports this package to build a Model's body). Recursing into
// the referenced Model's checkInstance/expandInstance/flattenInstance/
// resolveInstance for each object this field holds is done one layer up,
// by internal/instance, which has both this configuration and a model
// registry in scope.
type ClassType struct {
	Base
	ModelName string
}

func NewClass(name string) *ClassType {
	return &ClassType{Base: NewBase(Class, name)}
}

// CollectIncludes reports the referenced Model's name; the coach's Explain
// prints it. Model loading takes its includes from the schema's "include"
// list, not from this.
func (t *ClassType) CollectIncludes() []string {
	if t.ModelName == "" {
		return nil
	}
	return []string{t.ModelName}
}

func (t *ClassType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	m := schema.Get("model")
	if m == nil {
		list.Addf(t.Path(), schema.Pos(), "class type requires a \"model\" attribute")
		return list
	}
	name, ok := m.String()
	if !ok {
		list.Addf(m.Path(), m.Pos(), "model: expected a string")
		return list
	}
	t.ModelName = name
	return list
}

func (t *ClassType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*ClassType); ok {
		p = &pt.Base
		if t.ModelName == "" {
			t.ModelName = pt.ModelName
		}
	}
	return t.FlattenCommon(p)
}

func (t *ClassType) ValidateModel() errors.List {
	var list errors.List
	if t.ModelName == "" {
		list.Addf(t.Path(), token.NoPos, "class type has no resolved model reference")
	}
	return list
}

// CheckInstance confirms v's shape is compatible with being recursed into
// (an Object, or an Array of Objects under multi-arity), without itself
// validating object contents against the referenced Model's body; that
// recursion belongs to internal/instance, which holds the loaded Model.
func (t *ClassType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	switch v.Kind() {
	case value.ObjectKind:
	case value.ArrayKind:
		for _, el := range v.Array() {
			if el.Kind() != value.ObjectKind {
				list.Addf(el.Path(), el.Pos(), "expected an object for class %q", t.ModelName)
			}
		}
	default:
		list.Addf(v.Path(), v.Pos(), "expected an object for class %q, got %s", t.ModelName, v.Kind())
	}
	return list
}

func (t *ClassType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *ClassType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *ClassType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *ClassType) Clone() BasicType {
	c := *t
	return &c
}
