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
	"strings"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// MACType is a FormatChecker<string> type validating colon-separated
// hardware addresses (six groups of two hex digits). "auto" is a
// MAC-specific bypass sentinel, same as IPv4's.
type MACType struct {
	Base
	eitherAttr *attribute.Either
}

func NewMAC(name string) *MACType {
	return &MACType{Base: NewBase(MAC, name), eitherAttr: attribute.NewEither().(*attribute.Either)}
}

func (t *MACType) CollectIncludes() []string { return nil }

func (t *MACType) LoadModel(schema *value.Value) errors.List {
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

func (t *MACType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*MACType); ok {
		p = &pt.Base
		t.eitherAttr.Merge(pt.eitherAttr)
	}
	return t.FlattenCommon(p)
}

func (t *MACType) ValidateModel() errors.List {
	var list errors.List
	for _, addr := range t.eitherAttr.Values() {
		if !checkMAC(addr) {
			list.Addf(t.Path(), token.NoPos, "either value %q is not a valid MAC address", addr)
		}
	}
	return list
}

// checkMAC mirrors libace/types/MAC.cpp: split on ':', require exactly six
// groups, each exactly two hex digits in [0x00, 0xff]. net.ParseMAC is
// looser (it also accepts 8-byte EUI-64, 20-byte InfiniBand and dash/dot
// separated forms), so
// the grouping is checked by hand before delegating byte parsing to it.
func checkMAC(s string) bool {
	if s == "auto" {
		return true
	}
	groups := strings.Split(s, ":")
	if len(groups) != 6 {
		return false
	}
	for _, g := range groups {
		if len(g) != 2 {
			return false
		}
	}
	hw, err := net.ParseMAC(s)
	return err == nil && len(hw) == 6
}

func (t *MACType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	s, _ := v.String()
	if !checkMAC(s) {
		list.Addf(v.Path(), v.Pos(), "%q is not a valid MAC address", s)
	}
	list = append(list, t.eitherAttr.Validate(root, v)...)
	return list
}

func (t *MACType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *MACType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *MACType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *MACType) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	return &c
}
