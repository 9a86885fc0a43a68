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

// SelectorType is "a Class whose cloning is conditional on the value of a
// named discriminant attribute" (§3): instead of one model reference, it
// holds a branch table keyed by the discriminant's scalar value, plus the
// name of the key, directly inside the selector's own object, from which
// that value is read. At expand time the matching branch's Model is instantiated and
// the rest are dropped — again performed by internal/instance, which owns
// the model registry this package cannot import.
type SelectorType struct {
	Base
	Discriminant string
	Branches     map[string]string // discriminant value -> Model name
}

func NewSelector(name string) *SelectorType {
	return &SelectorType{Base: NewBase(Selector, name), Branches: map[string]string{}}
}

// CollectIncludes reports every branch Model name, not just the one that
// happens to be taken; the coach's Explain prints them. Model loading takes
// its includes from the schema's "include" list, not from this.
func (t *SelectorType) CollectIncludes() []string {
	names := make([]string, 0, len(t.Branches))
	for _, n := range t.Branches {
		names = append(names, n)
	}
	return names
}

func (t *SelectorType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)

	disc := schema.Get("discriminant")
	if disc == nil {
		list.Addf(t.Path(), schema.Pos(), "selector type requires a \"discriminant\" attribute")
	} else if s, ok := disc.String(); !ok {
		list.Addf(disc.Path(), disc.Pos(), "discriminant: expected a string")
	} else {
		t.Discriminant = s
	}

	m := schema.Get("model")
	if m == nil {
		list.Addf(t.Path(), schema.Pos(), "selector type requires a \"model\" attribute")
		return list
	}
	if m.Kind() != value.ObjectKind {
		list.Addf(m.Path(), m.Pos(), "model: expected an object mapping discriminant values to model names")
		return list
	}
	for _, k := range m.Keys() {
		el := m.Get(k)
		name, ok := el.String()
		if !ok {
			list.Addf(el.Path(), el.Pos(), "model[%s]: expected a string", k)
			continue
		}
		t.Branches[k] = name
	}
	return list
}

func (t *SelectorType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*SelectorType); ok {
		p = &pt.Base
		if t.Discriminant == "" {
			t.Discriminant = pt.Discriminant
		}
		if len(t.Branches) == 0 {
			t.Branches = pt.Branches
		}
	}
	return t.FlattenCommon(p)
}

func (t *SelectorType) ValidateModel() errors.List {
	var list errors.List
	if t.Discriminant == "" {
		list.Addf(t.Path(), token.NoPos, "selector has no discriminant path")
	}
	if len(t.Branches) == 0 {
		list.Addf(t.Path(), token.NoPos, "selector has no branches")
	}
	return list
}

func (t *SelectorType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.ObjectKind {
		list.Addf(v.Path(), v.Pos(), "expected an object, got %s", v.Kind())
		return list
	}
	disc := v.Get(t.Discriminant)
	if disc == nil {
		list.Addf(v.Path(), v.Pos(), "missing discriminant field %q", t.Discriminant)
		return list
	}
	s, ok := disc.Scalar()
	if !ok {
		list.Addf(disc.Path(), disc.Pos(), "discriminant field must be a scalar")
		return list
	}
	if _, ok := t.Branches[s]; !ok {
		list.Addf(disc.Path(), disc.Pos(), "discriminant value %q selects no branch", s)
	}
	return list
}

func (t *SelectorType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *SelectorType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *SelectorType) ResolveInstance(root, v *value.Value) errors.List { return nil }

// Branch returns the Model name selected by v's discriminant field, used
// by internal/instance once it has looked the field up.
func (t *SelectorType) Branch(discValue string) (string, bool) {
	name, ok := t.Branches[discValue]
	return name, ok
}

func (t *SelectorType) Clone() BasicType {
	c := *t
	c.Branches = make(map[string]string, len(t.Branches))
	for k, v := range t.Branches {
		c.Branches[k] = v
	}
	return &c
}
