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

package regexutil

import "testing"

func TestMatch(t *testing.T) {
	ok, err := Match("eth0", `eth[0-9]+`)
	if err != nil || !ok {
		t.Fatalf("Match = %v, %v, want true, nil", ok, err)
	}
	ok, err = Match("prefix-eth0", `eth[0-9]+`)
	if err != nil || ok {
		t.Fatalf("Match = %v, %v, want false (full match required), nil", ok, err)
	}
}

func TestMatchBadPattern(t *testing.T) {
	if _, err := Match("x", "("); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestExpandSimple(t *testing.T) {
	out, err := Expand("eth0", `eth([0-9]+)`, `iface-\1`)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if want := "iface-0"; out != want {
		t.Errorf("Expand = %q, want %q", out, want)
	}
}

func TestExpandMultipleGroupsDense(t *testing.T) {
	out, err := Expand("foo-bar", `([a-z]+)-([a-z]+)`, `\2_\1`)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if want := "bar_foo"; out != want {
		t.Errorf("Expand = %q, want %q", out, want)
	}
}

func TestExpandNoBackrefs(t *testing.T) {
	out, err := Expand("anything", `.+`, `literal`)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "literal" {
		t.Errorf("Expand = %q, want %q", out, "literal")
	}
}

func TestExpandLiteralBackslash(t *testing.T) {
	out, err := Expand("x", `x`, `a\\b`)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if want := `a\b`; out != want {
		t.Errorf("Expand = %q, want %q", out, want)
	}
}

func TestExpandRejectsNonDenseBackrefs(t *testing.T) {
	if _, err := Expand("ab", `(a)(b)`, `\1 \3`); err == nil {
		t.Fatal("expected error for non-dense back-references")
	}
}

func TestExpandRejectsZeroBackref(t *testing.T) {
	if _, err := Expand("a", `(a)`, `\0`); err == nil {
		t.Fatal("expected error for \\0 back-reference")
	}
}

func TestExpandNoMatch(t *testing.T) {
	if _, err := Expand("zzz", `abc`, `x`); err == nil {
		t.Fatal("expected error when pattern does not match")
	}
}
