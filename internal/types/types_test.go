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
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("integer")
	if !ok || k != Integer {
		t.Fatalf("ParseKind(integer) = %v, %v", k, ok)
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Fatal("ParseKind(bogus) should report false")
	}
}

func TestIntegerLoadCheckAndRange(t *testing.T) {
	schema := value.NewObject()
	schema.Put("range", value.NewString("[576..9000]"))
	schema.Put("default", value.NewInt(1500))

	it := NewInteger("mtu")
	if list := it.LoadModel(schema); !list.Ok() {
		t.Fatalf("LoadModel: %v", list)
	}
	if list := it.ValidateModel(); !list.Ok() {
		t.Fatalf("ValidateModel: %v", list)
	}

	root := value.NewObject()
	if list := it.CheckInstance(root, value.NewInt(1500)); !list.Ok() {
		t.Errorf("CheckInstance(1500): %v", list)
	}
	if list := it.CheckInstance(root, value.NewInt(99999)); list.Ok() {
		t.Error("CheckInstance(99999) should report a range violation")
	}
	if list := it.CheckInstance(root, value.NewString("x")); list.Ok() {
		t.Error("CheckInstance on a non-integer leaf should fail")
	}
}

func TestIntegerValidateModelRejectsOutOfRangeDefault(t *testing.T) {
	schema := value.NewObject()
	schema.Put("range", value.NewString("0..10"))
	schema.Put("default", value.NewInt(99))

	it := NewInteger("n")
	if list := it.LoadModel(schema); !list.Ok() {
		t.Fatalf("LoadModel: %v", list)
	}
	if list := it.ValidateModel(); list.Ok() {
		t.Fatal("expected ValidateModel to reject an out-of-range default")
	}
}

func TestIntegerExpandInsertsDefault(t *testing.T) {
	schema := value.NewObject()
	schema.Put("default", value.NewInt(42))
	it := NewInteger("n")
	if list := it.LoadModel(schema); !list.Ok() {
		t.Fatalf("LoadModel: %v", list)
	}

	root := value.NewObject()
	got, list := it.ExpandInstance(root, nil)
	if !list.Ok() {
		t.Fatalf("ExpandInstance: %v", list)
	}
	if n, ok := got.Int(); !ok || n != 42 {
		t.Errorf("ExpandInstance default = %v, %v, want 42, true", n, ok)
	}
}

func TestIntegerExpandRequiredFieldMissing(t *testing.T) {
	it := NewInteger("n")
	root := value.NewObject()
	_, list := it.ExpandInstance(root, nil)
	if list.Ok() {
		t.Fatal("expected a missing-required-field violation when no default is set")
	}
}

func TestIntegerCloneIsIndependent(t *testing.T) {
	schema := value.NewObject()
	schema.Put("range", value.NewString("0..10"))
	it := NewInteger("n")
	it.LoadModel(schema)

	clone := it.Clone().(*IntegerType)
	clone.rangeAttr.LoadModel(value.NewString("0..5"))

	if it.rangeAttr.Value().Hi == clone.rangeAttr.Value().Hi {
		t.Error("Clone should not alias the original's range attribute")
	}
}

func TestBooleanCheckInstance(t *testing.T) {
	bt := NewBoolean("enabled")
	root := value.NewObject()
	if list := bt.CheckInstance(root, value.NewBool(true)); !list.Ok() {
		t.Errorf("CheckInstance(true): %v", list)
	}
	if list := bt.CheckInstance(root, value.NewInt(1)); list.Ok() {
		t.Error("CheckInstance on a non-bool leaf should fail")
	}
}

func TestBasePath(t *testing.T) {
	b := NewBase(Integer, "mtu")
	if got, want := b.Path(), "mtu"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	b.SetParentPath("iface")
	if got, want := b.Path(), "iface.mtu"; got != want {
		t.Errorf("Path() with parent = %q, want %q", got, want)
	}
}
