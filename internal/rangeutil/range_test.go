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

package rangeutil

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseIntRange(t *testing.T) {
	r, err := Parse[int64]("[576..9000]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Lo != 576 || r.Hi != 9000 || r.LoOpen || r.HiOpen {
		t.Errorf("Parse = %+v", r)
	}
	if !r.Contains(1500) {
		t.Error("expected 1500 to be in [576..9000]")
	}
	if r.Contains(100) || r.Contains(99999) {
		t.Error("out-of-range values should not be contained")
	}
}

func TestParseOpenEnds(t *testing.T) {
	r, err := Parse[int64]("(0..10)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !r.LoOpen || !r.HiOpen {
		t.Errorf("expected both ends open, got %+v", r)
	}
	if r.Contains(0) || r.Contains(10) {
		t.Error("open ends must exclude the boundary values")
	}
	if !r.Contains(5) {
		t.Error("5 should be contained in (0..10)")
	}
}

func TestParseUnbounded(t *testing.T) {
	r, err := Parse[int64]("0..*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !r.HiInf {
		t.Errorf("expected HiInf, got %+v", r)
	}
	if !r.Contains(1 << 40) {
		t.Error("unbounded upper end should contain large values")
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "5", "a..b", "5..a"} {
		if _, err := Parse[int64](in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !(Range[int64]{Lo: 1, Hi: 5}).IsValid() {
		t.Error("[1..5] should be valid")
	}
	if (Range[int64]{Lo: 5, Hi: 1}).IsValid() {
		t.Error("[5..1] should be invalid")
	}
	if (Range[int64]{Lo: 5, Hi: 5, LoOpen: true}).IsValid() {
		t.Error("(5..5] should be invalid (empty)")
	}
	if !(Range[int64]{Lo: 5, Hi: 5}).IsValid() {
		t.Error("[5..5] should be valid")
	}
}

func TestIntersect(t *testing.T) {
	a := Range[int64]{Lo: 0, Hi: 10}
	b := Range[int64]{Lo: 5, Hi: 20}
	got := a.Intersect(b)
	if got.Lo != 5 || got.Hi != 10 {
		t.Errorf("Intersect = %+v", got)
	}

	unbounded := Range[int64]{LoInf: true, HiInf: true}
	got2 := unbounded.Intersect(a)
	if got2.Lo != 0 || got2.Hi != 10 {
		t.Errorf("Intersect with unbounded = %+v", got2)
	}
}

func TestIntLen(t *testing.T) {
	r := Range[int64]{Lo: 1, Hi: 5}
	n, ok := IntLen(r)
	if !ok || n != 5 {
		t.Errorf("IntLen([1..5]) = %d, %v", n, ok)
	}

	open := Range[int64]{Lo: 1, Hi: 5, LoOpen: true, HiOpen: true}
	n, ok = IntLen(open)
	if !ok || n != 3 {
		t.Errorf("IntLen((1..5)) = %d, %v, want 3", n, ok)
	}

	unbounded := Range[int64]{HiInf: true}
	if _, ok := IntLen(unbounded); ok {
		t.Error("IntLen of unbounded range should not be ok")
	}
}

func TestString(t *testing.T) {
	r := Range[int64]{Lo: 576, Hi: 9000}
	qt.Assert(t, qt.Equals(r.String(), "576..9000"))

	open := Range[int64]{Lo: 0, Hi: 10, LoOpen: true, HiOpen: true}
	qt.Assert(t, qt.Equals(open.String(), "(0..10)"))
}
