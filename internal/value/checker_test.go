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

func schemaFixture() Schema {
	return Schema{
		"name": {Kinds: []Kind{StringKind}},
		"age":  {Kinds: []Kind{IntKind}, Optional: true},
	}
}

func TestCheckerAcceptsValidObject(t *testing.T) {
	obj := NewObject()
	obj.Put("name", NewString("eth0"))
	obj.Put("age", NewInt(3))

	c := Checker{Header: "test"}
	list := c.Check(obj, schemaFixture())
	if !list.Ok() {
		t.Fatalf("expected no violations, got %v", list)
	}
}

func TestCheckerAllowsMissingOptionalKey(t *testing.T) {
	obj := NewObject()
	obj.Put("name", NewString("eth0"))

	c := Checker{Header: "test"}
	if list := c.Check(obj, schemaFixture()); !list.Ok() {
		t.Fatalf("expected no violations, got %v", list)
	}
}

func TestCheckerFlagsMissingRequiredKey(t *testing.T) {
	obj := NewObject()
	c := Checker{Header: "test"}
	list := c.Check(obj, schemaFixture())
	if list.Ok() {
		t.Fatal("expected a violation for missing required key")
	}
}

func TestCheckerFlagsUnknownKey(t *testing.T) {
	obj := NewObject()
	obj.Put("name", NewString("eth0"))
	obj.Put("bogus", NewInt(1))
	c := Checker{Header: "test"}
	list := c.Check(obj, schemaFixture())
	if list.Ok() {
		t.Fatal("expected a violation for unknown key")
	}
}

func TestCheckerFlagsWrongType(t *testing.T) {
	obj := NewObject()
	obj.Put("name", NewInt(1))
	c := Checker{Header: "test"}
	list := c.Check(obj, schemaFixture())
	if list.Ok() {
		t.Fatal("expected a violation for wrong-typed key")
	}
}

func TestCheckerRejectsNonObjectRoot(t *testing.T) {
	c := Checker{Header: "test"}
	list := c.Check(NewInt(1), schemaFixture())
	if list.Ok() {
		t.Fatal("expected a violation when root is not an object")
	}
}
