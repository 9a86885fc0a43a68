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

package toml

import (
	"testing"

	"go.aceconf.dev/ace/internal/value"
)

func TestExtractScalarsAndTables(t *testing.T) {
	src := []byte("name = \"eth0\"\nmtu = 1500\n\n[switch]\nmode = \"trunk\"\n")
	v, err := adapter{}.Extract("test.toml", src)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := v.Get("name").String(); s != "eth0" {
		t.Errorf("name = %q", s)
	}
	if i, _ := v.Get("mtu").Int(); i != 1500 {
		t.Errorf("mtu = %d", i)
	}
	if v.Get("switch").Kind() != value.ObjectKind {
		t.Errorf("switch: want object")
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
	v2, err := (adapter{}).Extract("out.toml", out)
	if err != nil {
		t.Fatalf("re-parse of dumped TOML failed: %v", err)
	}
	if s, _ := v2.Get("name").String(); s != "eth0" {
		t.Errorf("name = %q", s)
	}
}
