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

package path

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"$", ".", "$.foo.bar", ".foo.bar", "$.foo[3]", ".*", "$.*", "$.foo.*",
	} {
		p, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if got := p.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "foo", ".[3]", "$.foo[", "$."} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

func TestEqual(t *testing.T) {
	a := MustParse("$.foo[3]")
	b := MustParse("$.foo[3]")
	c := MustParse("$.foo[4]")
	if !a.Equal(b) {
		t.Error("identical paths should be equal")
	}
	if a.Equal(c) {
		t.Error("differing index should not be equal")
	}
}

func TestPrefix(t *testing.T) {
	a := MustParse("$.foo.bar.baz")
	b := MustParse("$.foo.bar.qux")
	got := Prefix(a, b)
	if want := MustParse("$.foo.bar"); !got.Equal(want) {
		t.Errorf("Prefix = %q, want %q", got, want)
	}
}

func TestAppend(t *testing.T) {
	base := MustParse("$.foo")
	out := base.Append(Named2("bar"))
	if got, want := out.String(), "$.foo.bar"; got != want {
		t.Errorf("Append = %q, want %q", got, want)
	}
	if len(base.Items) != 1 {
		t.Error("Append must not mutate the receiver")
	}
}
