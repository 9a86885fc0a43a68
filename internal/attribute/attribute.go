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

// Package attribute implements the named, typed, optional/overridable
// schema metadata described in §3 and §4.D: arity, range, either, default,
// length and deps attributes, each with a load-time (model) phase and an
// instance-time (validate) phase.
package attribute

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/value"
)

// Attribute is the common contract every concrete attribute kind
// implements (§3, §4.D).
type Attribute interface {
	// Name is the schema key this attribute is read from, e.g. "range".
	Name() string

	// CheckModel reports whether v (the schema value at this attribute's
	// key) has the shape this attribute expects.
	CheckModel(v *value.Value) error

	// LoadModel parses and stores v. Called only after CheckModel passes.
	LoadModel(v *value.Value) error

	// Merge combines a supertype's attribute into this (subtype) one,
	// e.g. intersecting ranges/arities or restricting either-sets. It
	// returns false if the combination is inconsistent (empty range,
	// empty arity, disjoint either-sets).
	Merge(parent Attribute) bool

	// Override replaces this attribute's value with other's. It returns
	// false if this attribute is not marked overridable.
	Override(other Attribute) bool

	// Validate confirms that the instance value at this attribute's field
	// satisfies the attribute, given the document root for path-relative
	// lookups (deps, hooks).
	Validate(root, v *value.Value) errors.List

	// Overridable reports whether a subtype may Override this attribute.
	Overridable() bool

	// Clone returns an independent copy, so that Class clones (§4.E) do
	// not share mutable attribute state.
	Clone() Attribute
}

// Def describes one entry in a BasicType's attribute Registry (§4.D):
// "name -> AttributeDef{ ctor, required, overridable }".
type Def struct {
	New         func() Attribute
	Required    bool
	Overridable bool
}

// Registry maps an attribute name to its definition. The BasicTypes in
// internal/types load one shared Registry of the attributes every kind has
// ("doc", "arity", "deps", "default"); kind-specific attributes such as
// "range", "either" and "length" are read by each kind's own LoadModel.
type Registry map[string]Def

// Load instantiates and loads every attribute registry defines that is
// present in schema, reporting missing-but-required attributes (§4.D).
// Keys of schema that r does not define are skipped, not reported. header
// is used to tag diagnostics (typically the BasicType's path).
func (r Registry) Load(schema *value.Value, header string) (map[string]Attribute, errors.List) {
	out := map[string]Attribute{}
	var list errors.List
	if schema == nil {
		for name, def := range r {
			if def.Required {
				list.Addf(header, schema.Pos(), "missing required attribute %q", name)
			}
		}
		return out, list
	}
	for _, key := range schema.Keys() {
		def, ok := r[key]
		if !ok {
			continue // keys outside r (e.g. "type", "model", or a misspelling) are skipped
		}
		a := def.New()
		v := schema.Get(key)
		if err := a.CheckModel(v); err != nil {
			list.Addf(v.Path(), v.Pos(), "attribute %q: %v", key, err)
			continue
		}
		if err := a.LoadModel(v); err != nil {
			list.Addf(v.Path(), v.Pos(), "attribute %q: %v", key, err)
			continue
		}
		out[key] = a
	}
	for name, def := range r {
		if def.Required {
			if _, ok := out[name]; !ok {
				list.Addf(header, schema.Pos(), "missing required attribute %q", name)
			}
		}
	}
	return out, list
}
