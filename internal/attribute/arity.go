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

package attribute

import (
	"fmt"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/arity"
	"go.aceconf.dev/ace/internal/value"
)

// Arity is the "arity" attribute: it expects a String parseable as an
// Arity expression (§4.D) and checks the instance array/singleton size.
type Arity struct {
	val         arity.Arity
	overridable bool
}

// NewArity constructs a default Arity attribute ("1"), overridable by
// default so subtypes may narrow it.
func NewArity() Attribute {
	return &Arity{val: arity.Exactly(1), overridable: true}
}

func (a *Arity) Name() string { return "arity" }

func (a *Arity) CheckModel(v *value.Value) error {
	s, ok := v.String()
	if !ok {
		return fmt.Errorf("expected a string")
	}
	_, err := arity.Parse(s)
	return err
}

func (a *Arity) LoadModel(v *value.Value) error {
	s, _ := v.String()
	parsed, err := arity.Parse(s)
	if err != nil {
		return err
	}
	a.val = parsed
	return nil
}

func (a *Arity) Value() arity.Arity { return a.val }

func (a *Arity) Merge(parent Attribute) bool {
	p, ok := parent.(*Arity)
	if !ok {
		return false
	}
	merged := a.val.Intersect(p.val)
	if !merged.IsValid() {
		return false
	}
	a.val = merged
	return true
}

func (a *Arity) Override(other Attribute) bool {
	if !a.overridable {
		return false
	}
	o, ok := other.(*Arity)
	if !ok {
		return false
	}
	a.val = o.val
	return true
}

func (a *Arity) Overridable() bool { return a.overridable }

func (a *Arity) Clone() Attribute {
	c := *a
	return &c
}

// Validate checks the instance array/singleton at v satisfies a's arity;
// arity unfolding itself happens in the instance engine's expand phase
// (§4.G), not here — Validate only checks the post-expansion size.
func (a *Arity) Validate(root, v *value.Value) errors.List {
	var list errors.List
	size := 1
	if v != nil && v.Kind() == value.ArrayKind {
		size = v.Len()
	}
	if !a.val.Check(size) {
		var path string
		if v != nil {
			path = v.Path()
		}
		list.Addf(path, root.Pos(), "arity violation: %d values, expected %s", size, a.val)
	}
	return list
}
