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
	"strings"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/path"
	"go.aceconf.dev/ace/internal/value"
)

// Dependency is one parsed "trigger@path" entry (§4.G, §6).
type Dependency struct {
	Trigger string
	Path    path.Path
	Raw     string
}

// Deps is the "deps" attribute: a list of dependency predicates gating a
// field's presence (§3, §4.G). Dependency resolution itself (walking the
// instance and comparing) happens in the instance engine; this attribute
// only parses and stores the list, and exposes it via Entries.
type Deps struct {
	entries     []Dependency
	overridable bool
}

func NewDeps() Attribute {
	return &Deps{overridable: true}
}

func (d *Deps) Name() string { return "deps" }

func (d *Deps) CheckModel(v *value.Value) error {
	if v.Kind() != value.ArrayKind {
		return fmt.Errorf("expected an array of \"trigger@path\" strings")
	}
	for _, el := range v.Array() {
		s, ok := el.String()
		if !ok {
			return fmt.Errorf("deps entries must be strings")
		}
		if _, _, err := parseDep(s); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deps) LoadModel(v *value.Value) error {
	var entries []Dependency
	for _, el := range v.Array() {
		s, _ := el.String()
		trigger, p, err := parseDep(s)
		if err != nil {
			return err
		}
		entries = append(entries, Dependency{Trigger: trigger, Path: p, Raw: s})
	}
	d.entries = entries
	return nil
}

func parseDep(s string) (trigger string, p path.Path, err error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return "", path.Path{}, fmt.Errorf("deps: %q: expected \"trigger@path\"", s)
	}
	trigger = s[:i]
	p, err = path.Parse(s[i+1:])
	if err != nil {
		return "", path.Path{}, fmt.Errorf("deps: %q: %w", s, err)
	}
	return trigger, p, nil
}

// Entries returns the parsed dependency list.
func (d *Deps) Entries() []Dependency { return d.entries }

// Merge concatenates the parent's dependencies onto this one: a subtype
// must satisfy both its own and its supertype's dependencies.
func (d *Deps) Merge(parent Attribute) bool {
	p, ok := parent.(*Deps)
	if !ok {
		return false
	}
	d.entries = append(append([]Dependency(nil), d.entries...), p.entries...)
	return true
}

func (d *Deps) Override(other Attribute) bool {
	if !d.overridable {
		return false
	}
	o, ok := other.(*Deps)
	if !ok {
		return false
	}
	d.entries = o.entries
	return true
}

func (d *Deps) Overridable() bool { return d.overridable }

func (d *Deps) Clone() Attribute {
	c := *d
	c.entries = append([]Dependency(nil), d.entries...)
	return &c
}

// Validate is a no-op here: dependency resolution requires walking the
// instance tree against this.Path anchored at the field's own scope, which
// only the instance engine (which owns the scope value) can do; see
// internal/types/dependency.go, reached through Base.ResolveDeps from
// internal/instance/resolve.go.
func (d *Deps) Validate(root, v *value.Value) errors.List {
	return nil
}
