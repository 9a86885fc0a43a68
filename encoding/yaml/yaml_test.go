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

package yaml

import (
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestExtractPreservesOrder(t *testing.T) {
	src := []byte("b: 1\na: 2.5\nc:\n  - true\n  - x\n")
	v, err := adapter{}.Extract("test.yaml", src)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Keys(); got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("key order not preserved: %v", got)
	}
	if pos := v.Get("b").Pos(); pos.Line != 1 {
		t.Errorf("b: line = %d, want 1", pos.Line)
	}
}

func TestExtractRejectsNonMappingRoot(t *testing.T) {
	if _, err := (adapter{}).Extract("test.yaml", []byte("- 1\n- 2\n")); err == nil {
		t.Fatal("want error for sequence root")
	}
}

func TestDumpRoundTripPreservesOrder(t *testing.T) {
	obj := value.NewObject()
	obj.Put("zed", value.NewString("last"))
	obj.Put("alpha", value.NewInt(7))
	out, err := (adapter{}).Dump(obj)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := (adapter{}).Extract("out.yaml", out)
	if err != nil {
		t.Fatalf("re-parse of dumped YAML failed: %v", err)
	}
	if got := v2.Keys(); got[0] != "zed" || got[1] != "alpha" {
		t.Fatalf("dump lost key order: %v", got)
	}
}
