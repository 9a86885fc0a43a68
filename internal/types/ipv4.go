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
	"net"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// IPv4Type is a FormatChecker<string> type (§4.E): string-kinded leaves
// additionally validated as dotted-quad addresses. "auto" is accepted as a
// sentinel meaning "assign at runtime", matching the original's checker
// (which special-cases the literal "auto").
type IPv4Type struct {
	Base
	eitherAttr *attribute.Either
}

func NewIPv4(name string) *IPv4Type {
	return &IPv4Type{Base: NewBase(IPv4, name), eitherAttr: attribute.NewEither().(*attribute.Either)}
}

func (t *IPv4Type) CollectIncludes() []string { return nil }

func (t *IPv4Type) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	if schema != nil {
		if e := schema.Get("either"); e != nil {
			if err := t.eitherAttr.CheckModel(e); err != nil {
				list.Addf(e.Path(), e.Pos(), "either: %v", err)
			} else if err := t.eitherAttr.LoadModel(e); err != nil {
				list.Addf(e.Path(), e.Pos(), "either: %v", err)
			}
		}
	}
	return list
}

func (t *IPv4Type) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*IPv4Type); ok {
		p = &pt.Base
		t.eitherAttr.Merge(pt.eitherAttr)
	}
	return t.FlattenCommon(p)
}

func (t *IPv4Type) ValidateModel() errors.List {
	var list errors.List
	for _, addr := range t.eitherAttr.Values() {
		if !checkIPv4(addr) {
			list.Addf(t.Path(), token.NoPos, "either value %q is not a valid IPv4 address", addr)
		}
	}
	return list
}

func checkIPv4(s string) bool {
	if s == "auto" {
		return true
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func (t *IPv4Type) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	s, _ := v.String()
	if !checkIPv4(s) {
		list.Addf(v.Path(), v.Pos(), "%q is not a valid IPv4 address", s)
	}
	list = append(list, t.eitherAttr.Validate(root, v)...)
	return list
}

func (t *IPv4Type) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *IPv4Type) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *IPv4Type) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *IPv4Type) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	return &c
}
