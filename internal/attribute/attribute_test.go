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
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestArityLoadAndValidate(t *testing.T) {
	a := NewArity().(*Arity)
	if err := a.CheckModel(value.NewString("2..4")); err != nil {
		t.Fatalf("CheckModel: %v", err)
	}
	if err := a.LoadModel(value.NewString("2..4")); err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	root := value.NewObject()
	arr := value.NewArray()
	arr.Push(value.NewInt(1))
	arr.Push(value.NewInt(2))
	root.Put("f", arr)
	if list := a.Validate(root, arr); !list.Ok() {
		t.Errorf("expected arity [2..4] to accept 2 elements, got %v", list)
	}

	short := value.NewArray()
	short.Push(value.NewInt(1))
	if list := a.Validate(root, short); list.Ok() {
		t.Error("expected arity [2..4] to reject 1 element")
	}
}

func TestArityMergeIntersects(t *testing.T) {
	sub := NewArity().(*Arity)
	sub.LoadModel(value.NewString("1..10"))
	parent := NewArity().(*Arity)
	parent.LoadModel(value.NewString("5..20"))

	if ok := sub.Merge(parent); !ok {
		t.Fatal("expected merge to succeed")
	}
	if got := sub.Value(); got.Lo != 5 || got.Hi != 10 {
		t.Errorf("merged arity = %+v, want [5..10]", got)
	}
}

func TestArityMergeRejectsDisjoint(t *testing.T) {
	sub := NewArity().(*Arity)
	sub.LoadModel(value.NewString("1..2"))
	parent := NewArity().(*Arity)
	parent.LoadModel(value.NewString("5..6"))

	if ok := sub.Merge(parent); ok {
		t.Fatal("expected merge of disjoint arities to fail")
	}
}

func TestFloatRangeValidate(t *testing.T) {
	r := NewFloatRange().(*FloatRange)
	if err := r.LoadModel(value.NewString("[576..9000]")); err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	root := value.NewObject()
	if list := r.Validate(root, value.NewInt(1500)); !list.Ok() {
		t.Errorf("expected 1500 in range, got %v", list)
	}
	if list := r.Validate(root, value.NewInt(99999)); list.Ok() {
		t.Error("expected 99999 to violate range")
	}
}

func TestFloatRangeCheckModelRejectsEmptyRange(t *testing.T) {
	r := NewFloatRange().(*FloatRange)
	if err := r.CheckModel(value.NewString("10..1")); err == nil {
		t.Fatal("expected error for an empty (hi < lo) range")
	}
}

func TestLengthValidate(t *testing.T) {
	l := NewLength().(*Length)
	if err := l.LoadModel(value.NewString("1..8")); err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	root := value.NewObject()
	if list := l.Validate(root, value.NewString("eth0")); !list.Ok() {
		t.Errorf("expected \"eth0\" (len 4) within [1..8], got %v", list)
	}
	if list := l.Validate(root, value.NewString("way-too-long-for-this")); list.Ok() {
		t.Error("expected long string to violate length range")
	}
}

func TestEitherValidate(t *testing.T) {
	e := NewEither().(*Either)
	set := value.NewArray()
	set.Push(value.NewString("tcp"))
	set.Push(value.NewString("udp"))
	if err := e.CheckModel(set); err != nil {
		t.Fatalf("CheckModel: %v", err)
	}
	if err := e.LoadModel(set); err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	root := value.NewObject()
	if list := e.Validate(root, value.NewString("tcp")); !list.Ok() {
		t.Errorf("expected \"tcp\" to be accepted, got %v", list)
	}
	if list := e.Validate(root, value.NewString("icmp")); list.Ok() {
		t.Error("expected \"icmp\" to be rejected")
	}
}

func TestEitherCheckModelRejectsEmptySet(t *testing.T) {
	e := NewEither().(*Either)
	if err := e.CheckModel(value.NewArray()); err == nil {
		t.Fatal("expected error for an empty either-set")
	}
}

func TestEitherMergeIntersectsSets(t *testing.T) {
	sub := NewEither().(*Either)
	subSet := value.NewArray()
	subSet.Push(value.NewString("a"))
	subSet.Push(value.NewString("b"))
	subSet.Push(value.NewString("c"))
	sub.LoadModel(subSet)

	parent := NewEither().(*Either)
	parentSet := value.NewArray()
	parentSet.Push(value.NewString("b"))
	parentSet.Push(value.NewString("c"))
	parentSet.Push(value.NewString("d"))
	parent.LoadModel(parentSet)

	if ok := sub.Merge(parent); !ok {
		t.Fatal("expected merge to succeed")
	}
	got := sub.Values()
	if len(got) != 2 {
		t.Fatalf("merged either set = %v, want 2 entries", got)
	}
}

func TestDefaultMergeInheritsFromParentWhenUnset(t *testing.T) {
	sub := NewDefault().(*Default)
	parent := NewDefault().(*Default)
	parent.LoadModel(value.NewInt(1500))

	if ok := sub.Merge(parent); !ok {
		t.Fatal("expected merge to succeed")
	}
	if sub.Value() == nil {
		t.Fatal("expected sub to inherit parent's default")
	}
	if n, _ := sub.Value().Int(); n != 1500 {
		t.Errorf("inherited default = %d, want 1500", n)
	}
}

func TestDepsParsesTriggerAtPath(t *testing.T) {
	d := NewDeps().(*Deps)
	arr := value.NewArray()
	arr.Push(value.NewString("enabled@$.mode"))
	if err := d.CheckModel(arr); err != nil {
		t.Fatalf("CheckModel: %v", err)
	}
	if err := d.LoadModel(arr); err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	entries := d.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries() = %v, want 1 entry", entries)
	}
	if entries[0].Trigger != "enabled" {
		t.Errorf("Trigger = %q, want %q", entries[0].Trigger, "enabled")
	}
	if got := entries[0].Path.String(); got != "$.mode" {
		t.Errorf("Path = %q, want %q", got, "$.mode")
	}
}

func TestDepsRejectsMissingAt(t *testing.T) {
	d := NewDeps().(*Deps)
	arr := value.NewArray()
	arr.Push(value.NewString("no-at-sign-here"))
	if err := d.CheckModel(arr); err == nil {
		t.Fatal("expected error for a dependency entry missing '@'")
	}
}

func TestRegistryLoadReportsUnknownAndMissing(t *testing.T) {
	reg := Registry{
		"range": {New: NewFloatRange, Required: true},
	}
	schema := value.NewObject()
	schema.Put("bogus", value.NewString("x"))
	_, list := reg.Load(schema, "test")
	if list.Ok() {
		t.Fatal("expected a missing-required-attribute violation")
	}
}

func TestRegistryLoadAcceptsValidSchema(t *testing.T) {
	reg := Registry{
		"range": {New: NewFloatRange, Required: true},
	}
	schema := value.NewObject()
	schema.Put("range", value.NewString("0..10"))
	out, list := reg.Load(schema, "test")
	if !list.Ok() {
		t.Fatalf("Load: %v", list)
	}
	if _, ok := out["range"]; !ok {
		t.Error("expected \"range\" attribute to be loaded")
	}
}
