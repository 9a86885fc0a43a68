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

package arity

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Arity
	}{
		{"3", Exactly(3)},
		{"0..5", Between(0, 5)},
		{"2..", AtLeast(2)},
		{"*", Any},
		{"?", Between(0, 1)},
		{" 1..4 ", Between(1, 4)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1..abc", "abc..1"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", in)
		}
	}
}

func TestCheck(t *testing.T) {
	a := Between(1, 3)
	if a.Check(0) {
		t.Error("Check(0) should fail for [1..3]")
	}
	if !a.Check(2) {
		t.Error("Check(2) should pass for [1..3]")
	}
	if a.Check(4) {
		t.Error("Check(4) should fail for [1..3]")
	}
	if !AtLeast(2).Check(100) {
		t.Error("AtLeast(2).Check(100) should pass")
	}
}

func TestIsValid(t *testing.T) {
	if !Between(1, 3).IsValid() {
		t.Error("[1..3] should be valid")
	}
	if Between(3, 1).IsValid() {
		t.Error("[3..1] should be invalid")
	}
	if !Any.IsValid() {
		t.Error("Any should be valid")
	}
}

func TestIntersect(t *testing.T) {
	a := Between(1, 5)
	b := Between(3, 10)
	got := a.Intersect(b)
	if want := Between(3, 5); got != want {
		t.Errorf("Intersect mismatch (-got +want):\n%s", cmp.Diff(got, want))
	}

	if got := AtLeast(2).Intersect(Between(0, 4)); got != (Arity{Lo: 2, Hi: 4}) {
		t.Errorf("Intersect with unbounded lhs = %+v", got)
	}
	if got := Any.Intersect(Any); !got.Unbounded || got.Lo != 0 {
		t.Errorf("Any.Intersect(Any) = %+v", got)
	}

	// Intersection may be invalid (empty range).
	if got := Between(5, 6).Intersect(Between(1, 2)); got.IsValid() {
		t.Errorf("disjoint ranges should intersect to invalid arity, got %+v", got)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		a    Arity
		want string
	}{
		{Any, "*"},
		{Between(0, 1), "?"},
		{AtLeast(2), "2.."},
		{Exactly(4), "4"},
		{Between(1, 3), "1..3"},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(c.a.String(), c.want))
	}
}
