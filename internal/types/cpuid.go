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
	"runtime"
	"strconv"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// CPUIDType is both a RangedType<int64> and an EnumeratedType<int64>
// (CPUID.h multiply-inherits from both in the source); since Go has no
// multiple inheritance, both policies are composed directly as fields and
// both are applied in LoadModel/ValidateModel/CheckInstance rather than
// split across two parent calls. Every leaf is additionally format-checked
// against the host's logical core count: -1 is the "any core" wildcard,
// valid real core ids are [0, runtime.NumCPU()).
type CPUIDType struct {
	Base
	rangeAttr  *attribute.FloatRange
	eitherAttr *attribute.Either
}

func NewCPUID(name string) *CPUIDType {
	return &CPUIDType{
		Base:       NewBase(CPUID, name),
		rangeAttr:  attribute.NewFloatRange().(*attribute.FloatRange),
		eitherAttr: attribute.NewEither().(*attribute.Either),
	}
}

func (t *CPUIDType) CollectIncludes() []string { return nil }

func (t *CPUIDType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	if schema != nil {
		if r := schema.Get("range"); r != nil {
			if err := t.rangeAttr.CheckModel(r); err != nil {
				list.Addf(r.Path(), r.Pos(), "range: %v", err)
			} else if err := t.rangeAttr.LoadModel(r); err != nil {
				list.Addf(r.Path(), r.Pos(), "range: %v", err)
			}
		}
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

func (t *CPUIDType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	var pr *attribute.FloatRange
	if pt, ok := parent.(*CPUIDType); ok {
		p = &pt.Base
		pr = pt.rangeAttr
		t.eitherAttr.Merge(pt.eitherAttr)
	}
	list := t.FlattenCommon(p)
	if pr != nil && !t.rangeAttr.Merge(pr) {
		list.Addf(t.Path(), token.NoPos, "range conflicts with inherited range")
	}
	return list
}

// checkCPUID mirrors libace/types/CPUID.cpp's checkFormat: id >= -1 &&
// id < hardware_concurrency.
func checkCPUID(id int64) bool {
	return id >= -1 && id < int64(runtime.NumCPU())
}

func (t *CPUIDType) ValidateModel() errors.List {
	var list errors.List
	for _, s := range t.eitherAttr.Values() {
		id, err := parseCPUID(s)
		if err != nil || !checkCPUID(id) {
			list.Addf(t.Path(), token.NoPos, "either value %q is not a valid core id", s)
		}
	}
	if def := t.Default(); def != nil {
		i, ok := def.Int()
		if !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be an integer")
		} else {
			if !checkCPUID(i) {
				list.Addf(t.Path(), def.Pos(), "default value %d is not a valid core id", i)
			}
			if !t.rangeAttr.Value().Contains(float64(i)) {
				list.Addf(t.Path(), def.Pos(), "default value %d is out of range %s", i, t.rangeAttr.Value())
			}
		}
	}
	return list
}

func parseCPUID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func (t *CPUIDType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.IntKind {
		list.Addf(v.Path(), v.Pos(), "expected an integer, got %s", v.Kind())
		return list
	}
	i, _ := v.Int()
	if !checkCPUID(i) {
		list.Addf(v.Path(), v.Pos(), "%d is not a valid core id (host has %d)", i, runtime.NumCPU())
	}
	list = append(list, t.rangeAttr.Validate(root, v)...)
	list = append(list, t.eitherAttr.Validate(root, v)...)
	return list
}

func (t *CPUIDType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *CPUIDType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *CPUIDType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *CPUIDType) Clone() BasicType {
	c := *t
	r := *t.rangeAttr
	c.rangeAttr = &r
	e := *t.eitherAttr
	c.eitherAttr = &e
	return &c
}
