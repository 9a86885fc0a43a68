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

// Package types implements the polymorphic BasicType hierarchy (§4.E):
// Boolean, Integer, Float, String, Enum, File, IPv4, MAC, URI, CPUID,
// Class and Selector. Rather than the source's deep C++ inheritance, each
// kind is a small struct composing a common Base plus the policy
// attributes it needs (§9: "Policy mixins ... become small composable
// structs held by the variant, not base classes").
package types

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/arity"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// Kind enumerates the closed set of schema node kinds.
type Kind int

const (
	Boolean Kind = iota
	Integer
	Float
	String
	Enum
	File
	IPv4
	MAC
	URI
	CPUID
	Class
	Selector
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Enum:
		return "enum"
	case File:
		return "file"
	case IPv4:
		return "ipv4"
	case MAC:
		return "mac"
	case URI:
		return "uri"
	case CPUID:
		return "cpuid"
	case Class:
		return "class"
	case Selector:
		return "selector"
	default:
		return "unknown"
	}
}

// ParseKind maps the schema's "type" string (§6) to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := Boolean; k <= Selector; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// BasicType is the common interface every schema node kind implements
// (§9): model-time lifecycle (LoadModel/FlattenModel/ValidateModel) and
// instance-time lifecycle (CheckInstance/ExpandInstance/FlattenInstance/
// ResolveInstance), plus cloning and introspection for the Coach explainer.
type BasicType interface {
	Kind() Kind
	Name() string
	Path() string
	Doc() string
	ArityAttr() arity.Arity
	Deps() []attribute.Dependency
	Default() *value.Value
	// CollectIncludes returns the names of Models this type references
	// (Class/Selector only); empty for every other kind.
	CollectIncludes() []string

	// LoadModel reads this type's own schema subtree (everything under
	// body.<name> except "type", which the caller already consumed to
	// pick the constructor).
	LoadModel(schema *value.Value) errors.List

	// FlattenModel merges a supertype's attributes into this type
	// (§4.F step 7); parent is nil at the top of an inheritance chain.
	// Idempotent: flattening an already-flattened type is a no-op.
	FlattenModel(parent BasicType) errors.List

	// ValidateModel confirms this type's attributes are internally
	// consistent (default within range, either non-empty, dependency
	// paths well-formed) before any instance may be checked against it.
	ValidateModel() errors.List

	// CheckInstance enforces this type's attributes and format on v,
	// without mutating it.
	CheckInstance(root, v *value.Value) errors.List

	// ExpandInstance inserts defaults and unfolds arity, returning the
	// (possibly replaced) value to install in the parent object/array.
	ExpandInstance(root, v *value.Value) (*value.Value, errors.List)

	// FlattenInstance is the per-type post-expansion hook; every kind in
	// this package leaves v unchanged and reports nothing.
	FlattenInstance(root, v *value.Value) errors.List

	// ResolveInstance is the per-type resolve hook; every kind in this
	// package reports nothing from it. Dependency triggers are evaluated
	// by internal/instance through Base.ResolveDeps, and hook application
	// is a separate, Model-owned pass over the whole tree (§4.G).
	ResolveInstance(root, v *value.Value) errors.List

	// Clone returns an independent copy of this type and its attributes.
	Clone() BasicType
}

// Base carries the fields every BasicType shares (§3: "name, arity (via
// attribute), doc string, dependency set ..., inclusion hints, owning
// parent"). Concrete kinds embed Base and add their own attributes.
type Base struct {
	kind   Kind
	name   string
	parent string // path of the owning Model or Class, for Path()

	arityAttr *attribute.Arity
	docAttr   *attribute.Doc
	depsAttr  *attribute.Deps
	defAttr   *attribute.Default

	overridable bool
}

// NewBase constructs a Base with its common attributes defaulted, ready
// for LoadModel to fill in from the schema subtree.
func NewBase(kind Kind, name string) Base {
	return Base{
		kind:      kind,
		name:      name,
		arityAttr: attribute.NewArity().(*attribute.Arity),
		docAttr:   attribute.NewDoc().(*attribute.Doc),
		depsAttr:  attribute.NewDeps().(*attribute.Deps),
		defAttr:   attribute.NewDefault().(*attribute.Default),
	}
}

func (b *Base) Kind() Kind { return b.kind }
func (b *Base) Name() string { return b.name }

// SetParentPath records the dotted path of the owning scope, used to
// render Path() before any instance exists.
func (b *Base) SetParentPath(p string) { b.parent = p }

func (b *Base) Path() string {
	if b.parent == "" {
		return b.name
	}
	return b.parent + "." + b.name
}

func (b *Base) Doc() string                       { return b.docAttr.Text() }
func (b *Base) ArityAttr() arity.Arity             { return b.arityAttr.Value() }
func (b *Base) Deps() []attribute.Dependency       { return b.depsAttr.Entries() }
func (b *Base) Default() *value.Value              { return b.defAttr.Value() }

// commonRegistry lists the attributes every kind shares; LoadCommon loads
// it for every concrete kind.
func commonRegistry() attribute.Registry {
	return attribute.Registry{
		"doc":     {New: attribute.NewDoc, Required: false, Overridable: true},
		"arity":   {New: attribute.NewArity, Required: false, Overridable: true},
		"deps":    {New: attribute.NewDeps, Required: false, Overridable: true},
		"default": {New: attribute.NewDefault, Required: false, Overridable: true},
	}
}

// LoadCommon loads the attributes every BasicType shares. Concrete types
// call this from their own LoadModel before loading their specific
// attributes (range, either, length, schemes, mode...).
func (b *Base) LoadCommon(schema *value.Value) errors.List {
	reg := commonRegistry()
	loaded, list := reg.Load(schema, b.Path())
	if a, ok := loaded["doc"].(*attribute.Doc); ok {
		b.docAttr = a
	}
	if a, ok := loaded["arity"].(*attribute.Arity); ok {
		b.arityAttr = a
	}
	if a, ok := loaded["deps"].(*attribute.Deps); ok {
		b.depsAttr = a
	}
	if a, ok := loaded["default"].(*attribute.Default); ok {
		b.defAttr = a
	}
	if schema != nil {
		if ov := schema.Get("override"); ov != nil {
			if bv, ok := ov.Bool(); ok {
				b.overridable = bv
				b.defAttr.SetOverridable(bv)
			}
		}
	}
	return list
}

// FlattenCommon merges a parent Base's common attributes into b
// (§4.F step 7); called by each concrete kind's FlattenModel.
func (b *Base) FlattenCommon(parent *Base) errors.List {
	var list errors.List
	if parent == nil {
		return list
	}
	if !b.arityAttr.Merge(parent.arityAttr) {
		list.Addf(b.Path(), token.NoPos, "arity conflicts with inherited arity")
	}
	if !b.depsAttr.Merge(parent.depsAttr) {
		list.Addf(b.Path(), token.NoPos, "deps conflicts with inherited deps")
	}
	b.docAttr.Merge(parent.docAttr)
	b.defAttr.Merge(parent.defAttr)
	return list
}

// ResolveDeps evaluates b's dependency list against root, per §4.G. scope
// is the value representing "here" for Local-anchored dependency paths
// (the object that owns this field). It reports whether every dependency
// is satisfied; callers decide whether an unsatisfied field is dropped
// (optional) or a constraint violation (required).
func (b *Base) ResolveDeps(root, scope *value.Value) bool {
	for _, d := range b.depsAttr.Entries() {
		if !dependencySatisfied(root, scope, d) {
			return false
		}
	}
	return true
}
