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

// Default is the "default" attribute: a scalar or array of the base type,
// inserted by the instance engine's expand phase (§4.G) when the field is
// absent.
type Default struct {
	val         *value.Value
	overridable bool
}

// NewDefault constructs an unset default, overridable unless the schema
// says otherwise (the BasicType's LoadCommon applies the field-schema's
// "override" key via SetOverridable after Registry.Load has built it).
func NewDefault() Attribute {
	return &Default{overridable: true}
}

func (d *Default) Name() string { return "default" }

func (d *Default) CheckModel(v *value.Value) error {
	switch v.Kind() {
	case value.BoolKind, value.IntKind, value.FloatKind, value.StringKind, value.ArrayKind:
		return nil
	default:
		return fmt.Errorf("expected a scalar or array default")
	}
}

func (d *Default) LoadModel(v *value.Value) error {
	d.val = v
	return nil
}

// Value returns the stored default value tree node, or nil if unset.
func (d *Default) Value() *value.Value { return d.val }

func (d *Default) SetOverridable(b bool) { d.overridable = b }

// Merge keeps the subtype's default if it has one; otherwise it inherits
// the parent's (§4.D: "for default, the subtype wins only if overridable"
// — a subtype that has not set its own default always inherits, since
// there is nothing of its own to keep).
func (d *Default) Merge(parent Attribute) bool {
	p, ok := parent.(*Default)
	if !ok {
		return false
	}
	if d.val == nil {
		d.val = p.val
		return true
	}
	if p.val == nil {
		return true
	}
	if !d.overridable {
		return false
	}
	return true
}

func (d *Default) Override(other Attribute) bool {
	if !d.overridable {
		return false
	}
	o, ok := other.(*Default)
	if !ok {
		return false
	}
	d.val = o.val
	return true
}

func (d *Default) Overridable() bool { return d.overridable }

func (d *Default) Clone() Attribute {
	c := *d
	return &c
}

// Validate is a no-op for Default: whether the default itself is in-range
// is checked at model-validate time by the owning BasicType, not per
// instance.
func (d *Default) Validate(root, v *value.Value) errors.List {
	return nil
}
