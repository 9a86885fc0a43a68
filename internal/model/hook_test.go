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

package model

import (
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestParseHookPreservesBackreferenceEscapes(t *testing.T) {
	h, err := parseHook(`$.iface:eth([0-9]+):enp\1s0`)
	if err != nil {
		t.Fatalf("parseHook: %v", err)
	}
	if h.Path != "$.iface" {
		t.Errorf("Path = %q, want %q", h.Path, "$.iface")
	}
	if h.Match != "eth([0-9]+)" {
		t.Errorf("Match = %q, want %q", h.Match, "eth([0-9]+)")
	}
	if want := `enp\1s0`; h.Replacement != want {
		t.Errorf("Replacement = %q, want %q", h.Replacement, want)
	}
}

func TestParseHookWrongFieldCount(t *testing.T) {
	if _, err := parseHook("$.iface:eth([0-9]+)"); err == nil {
		t.Error("expected an error for a hook with only 2 fields")
	}
	if _, err := parseHook("$.iface:a:b:c"); err == nil {
		t.Error("expected an error for a hook with 4 fields")
	}
}

func TestLoadHooksPreservesBackreferenceEscapes(t *testing.T) {
	arr := value.NewArray()
	arr.Push(value.NewString(`$.iface:eth([0-9]+):enp\1s0`))

	hooks, list := loadHooks(arr)
	if !list.Ok() {
		t.Fatalf("loadHooks: %v", list)
	}
	if len(hooks) != 1 {
		t.Fatalf("loadHooks: got %d hooks, want 1", len(hooks))
	}
	if want := `enp\1s0`; hooks[0].Replacement != want {
		t.Errorf("Replacement = %q, want %q", hooks[0].Replacement, want)
	}
}
