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
	"go.aceconf.dev/ace/internal/value"
)

// Either is the "either" attribute: an Array of scalars of the base type,
// restricting the field to that enumeration (§3, §4.D).
type Either struct {
	set    []string
	isSet  bool
	overridable bool
}

func NewEither() Attribute {
	return &Either{overridable: true}
}

func (e *Either) Name() string { return "either" }

func (e *Either) CheckModel(v *value.Value) error {
	if v.Kind() != value.ArrayKind {
		return fmt.Errorf("expected an array")
	}
	if v.Len() == 0 {
		return fmt.Errorf("either-set must not be empty")
	}
	for _, el := range v.Array() {
		if _, ok := el.Scalar(); !ok {
			return fmt.Errorf("either-set elements must be scalars")
		}
	}
	return nil
}

func (e *Either) LoadModel(v *value.Value) error {
	var set []string
	for _, el := range v.Array() {
		s, _ := el.Scalar()
		set = append(set, s)
	}
	e.set, e.isSet = set, true
	return nil
}

// Values returns the allowed scalar representations.
func (e *Either) Values() []string { return e.set }

func (e *Either) contains(s string) bool {
	for _, v := range e.set {
		if v == s {
			return true
		}
	}
	return false
}

// Merge restricts e's set to the intersection with the parent's set
// (§4.D: "for either, intersect set membership").
func (e *Either) Merge(parent Attribute) bool {
	p, ok := parent.(*Either)
	if !ok {
		return false
	}
	if !p.isSet {
		return true
	}
	if !e.isSet {
		e.set, e.isSet = p.set, true
		return true
	}
	var merged []string
	for _, v := range e.set {
		if p.contains(v) {
			merged = append(merged, v)
		}
	}
	if len(merged) == 0 {
		return false
	}
	e.set = merged
	return true
}

func (e *Either) Override(other Attribute) bool {
	if !e.overridable {
		return false
	}
	o, ok := other.(*Either)
	if !ok {
		return false
	}
	e.set, e.isSet = o.set, o.isSet
	return true
}

func (e *Either) Overridable() bool { return e.overridable }

func (e *Either) Clone() Attribute {
	c := *e
	c.set = append([]string(nil), e.set...)
	return &c
}

func (e *Either) Validate(root, v *value.Value) errors.List {
	var list errors.List
	if !e.isSet || v == nil {
		return list
	}
	s, ok := v.Scalar()
	if !ok {
		return list
	}
	if !e.contains(s) {
		list.Addf(v.Path(), v.Pos(), "value %q is not one of %v", s, e.set)
	}
	return list
}
