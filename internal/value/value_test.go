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

package value

import "testing"

func TestObjectPreservesInsertionOrder(t *testing.T) {
	root := NewObject()
	root.Put("b", NewInt(2))
	root.Put("a", NewInt(1))
	root.Put("c", NewInt(3))

	got := root.Keys()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPutReplacesInPlace(t *testing.T) {
	root := NewObject()
	root.Put("a", NewInt(1))
	root.Put("b", NewInt(2))
	root.Put("a", NewInt(99))

	if got := root.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("replace should not change key order, got %v", got)
	}
	if n, ok := root.Get("a").Int(); !ok || n != 99 {
		t.Errorf("Get(a) = %d, %v, want 99, true", n, ok)
	}
}

func TestDeletePreservesRemainingOrder(t *testing.T) {
	root := NewObject()
	root.Put("a", NewInt(1))
	root.Put("b", NewInt(2))
	root.Put("c", NewInt(3))
	root.Delete("b")

	got := root.Keys()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Keys() after delete = %v, want [a c]", got)
	}
	if root.Has("b") {
		t.Error("deleted key should not be present")
	}
}

func TestPathReconstruction(t *testing.T) {
	root := NewObject()
	child := NewObject()
	root.Put("a", child)
	arr := NewArray()
	child.Put("list", arr)
	leaf := NewInt(42)
	arr.Push(leaf)

	if got, want := leaf.Path(), "a.list[0]"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got := root.Path(); got != "" {
		t.Errorf("root Path() = %q, want empty", got)
	}
}

func TestScalarFormatting(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{NewBool(true), "true"},
		{NewInt(7), "7"},
		{NewString("x"), "x"},
	}
	for _, c := range cases {
		got, ok := c.v.Scalar()
		if !ok || got != c.want {
			t.Errorf("Scalar() = %q, %v, want %q, true", got, ok, c.want)
		}
	}
	if _, ok := NewObject().Scalar(); ok {
		t.Error("Scalar() on an object should report false")
	}
}

func TestFloatWidensFromInt(t *testing.T) {
	v := NewInt(5)
	f, ok := v.Float()
	if !ok || f != 5.0 {
		t.Errorf("Float() on an int leaf = %v, %v, want 5.0, true", f, ok)
	}
}

func TestSetStringInPlace(t *testing.T) {
	v := NewString("old")
	parent := NewObject()
	parent.Put("k", v)
	v.SetString("new")
	if got, _ := parent.Get("k").String(); got != "new" {
		t.Errorf("SetString did not update in place, got %q", got)
	}
	if v.Parent() != parent {
		t.Error("SetString should not disturb identity/parent")
	}
}
