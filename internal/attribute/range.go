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
	"go.aceconf.dev/ace/internal/rangeutil"
	"go.aceconf.dev/ace/internal/value"
)

// FloatRange is the "range" attribute for numeric types: it expects a
// String parseable as a Range expression and checks numeric leaves.
type FloatRange struct {
	val         rangeutil.Range[float64]
	set         bool
	overridable bool
}

// NewFloatRange constructs an unset (unbounded) range attribute,
// overridable by default.
func NewFloatRange() Attribute {
	return &FloatRange{val: rangeutil.Range[float64]{LoInf: true, HiInf: true}, overridable: true}
}

func (r *FloatRange) Name() string { return "range" }

func (r *FloatRange) CheckModel(v *value.Value) error {
	s, ok := v.String()
	if !ok {
		return fmt.Errorf("expected a string")
	}
	parsed, err := rangeutil.Parse[float64](s)
	if err != nil {
		return err
	}
	if !parsed.IsValid() {
		return fmt.Errorf("range %q is empty (hi < lo)", s)
	}
	return nil
}

func (r *FloatRange) LoadModel(v *value.Value) error {
	s, _ := v.String()
	parsed, err := rangeutil.Parse[float64](s)
	if err != nil {
		return err
	}
	r.val, r.set = parsed, true
	return nil
}

func (r *FloatRange) Value() rangeutil.Range[float64] { return r.val }

func (r *FloatRange) Merge(parent Attribute) bool {
	p, ok := parent.(*FloatRange)
	if !ok {
		return false
	}
	if !p.set {
		return true
	}
	if !r.set {
		r.val, r.set = p.val, true
		return true
	}
	merged := r.val.Intersect(p.val)
	if !merged.IsValid() {
		return false
	}
	r.val = merged
	return true
}

func (r *FloatRange) Override(other Attribute) bool {
	if !r.overridable {
		return false
	}
	o, ok := other.(*FloatRange)
	if !ok {
		return false
	}
	r.val, r.set = o.val, o.set
	return true
}

func (r *FloatRange) Overridable() bool { return r.overridable }

func (r *FloatRange) Clone() Attribute {
	c := *r
	return &c
}

func (r *FloatRange) Validate(root, v *value.Value) errors.List {
	var list errors.List
	if !r.set || v == nil {
		return list
	}
	f, ok := v.Float()
	if !ok {
		return list
	}
	if !r.val.Contains(f) {
		list.Addf(v.Path(), v.Pos(), "value %v is out of range %s", f, r.val)
	}
	return list
}

// Length is the "length" attribute for String types: a Range over the
// string's rune length.
type Length struct {
	val         rangeutil.Range[int64]
	set         bool
	overridable bool
}

func NewLength() Attribute {
	return &Length{val: rangeutil.Range[int64]{LoInf: true, HiInf: true}, overridable: true}
}

func (l *Length) Name() string { return "length" }

func (l *Length) CheckModel(v *value.Value) error {
	s, ok := v.String()
	if !ok {
		return fmt.Errorf("expected a string")
	}
	parsed, err := rangeutil.Parse[int64](s)
	if err != nil {
		return err
	}
	if !parsed.IsValid() {
		return fmt.Errorf("length range %q is empty", s)
	}
	return nil
}

func (l *Length) LoadModel(v *value.Value) error {
	s, _ := v.String()
	parsed, err := rangeutil.Parse[int64](s)
	if err != nil {
		return err
	}
	l.val, l.set = parsed, true
	return nil
}

func (l *Length) Merge(parent Attribute) bool {
	p, ok := parent.(*Length)
	if !ok {
		return false
	}
	if !p.set {
		return true
	}
	if !l.set {
		l.val, l.set = p.val, true
		return true
	}
	merged := l.val.Intersect(p.val)
	if !merged.IsValid() {
		return false
	}
	l.val = merged
	return true
}

func (l *Length) Override(other Attribute) bool {
	if !l.overridable {
		return false
	}
	o, ok := other.(*Length)
	if !ok {
		return false
	}
	l.val, l.set = o.val, o.set
	return true
}

func (l *Length) Overridable() bool { return l.overridable }

func (l *Length) Clone() Attribute {
	c := *l
	return &c
}

func (l *Length) Validate(root, v *value.Value) errors.List {
	var list errors.List
	if !l.set || v == nil {
		return list
	}
	s, ok := v.String()
	if !ok {
		return list
	}
	n := int64(len([]rune(s)))
	if !l.val.Contains(n) {
		list.Addf(v.Path(), v.Pos(), "length %d is out of range %s", n, l.val)
	}
	return list
}
