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

// Doc is the "doc" attribute: a free-text description surfaced by the
// Coach explainer (§4.H).
type Doc struct {
	text        string
	overridable bool
}

func NewDoc() Attribute { return &Doc{overridable: true} }

func (d *Doc) Name() string { return "doc" }

func (d *Doc) CheckModel(v *value.Value) error {
	if _, ok := v.String(); !ok {
		return fmt.Errorf("expected a string")
	}
	return nil
}

func (d *Doc) LoadModel(v *value.Value) error {
	d.text, _ = v.String()
	return nil
}

func (d *Doc) Text() string { return d.text }

func (d *Doc) Merge(parent Attribute) bool {
	p, ok := parent.(*Doc)
	if !ok {
		return false
	}
	if d.text == "" {
		d.text = p.text
	}
	return true
}

func (d *Doc) Override(other Attribute) bool {
	if !d.overridable {
		return false
	}
	o, ok := other.(*Doc)
	if !ok {
		return false
	}
	d.text = o.text
	return true
}

func (d *Doc) Overridable() bool { return d.overridable }

func (d *Doc) Clone() Attribute {
	c := *d
	return &c
}

func (d *Doc) Validate(root, v *value.Value) errors.List { return nil }
