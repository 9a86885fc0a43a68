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

package json

import (
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestExtractPreservesOrderAndNumberKind(t *testing.T) {
	src := []byte(`{"b": 1, "a": 2.5, "c": [true, "x"]}`)
	v, err := adapter{}.Extract("test.json", src)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Keys(); got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("key order not preserved: %v", got)
	}
	if _, ok := v.Get("b").Int(); !ok {
		t.Errorf("b: want int kind")
	}
	if _, ok := v.Get("a").Float(); !ok {
		t.Errorf("a: want float kind")
	}
}

func TestExtractRejectsNonObjectRoot(t *testing.T) {
	if _, err := (adapter{}).Extract("test.json", []byte(`[1,2,3]`)); err == nil {
		t.Fatal("want error for array root")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	obj := value.NewObject()
	obj.Put("name", value.NewString("eth0"))
	obj.Put("mtu", value.NewInt(1500))
	out, err := (adapter{}).Dump(obj)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := (adapter{}).Extract("out.json", out)
	if err != nil {
		t.Fatalf("re-parse of dumped JSON failed: %v", err)
	}
	if s, _ := v2.Get("name").String(); s != "eth0" {
		t.Errorf("name = %q", s)
	}
	if i, _ := v2.Get("mtu").Int(); i != 1500 {
		t.Errorf("mtu = %d", i)
	}
}
