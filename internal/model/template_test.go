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

func TestInstantiateTemplatesSubstitutesStringInterior(t *testing.T) {
	body := value.NewObject()
	body.Put("iface", value.NewString("eth${index}"))

	templates := value.NewObject()
	templates.Put("index", value.NewInt(0))

	out, err := instantiateTemplates(body, templates, nil)
	if err != nil {
		t.Fatalf("instantiateTemplates: %v", err)
	}
	got, _ := out.Get("iface").String()
	if want := "eth0"; got != want {
		t.Errorf("iface = %q, want %q", got, want)
	}
}

func TestInstantiateTemplatesSubstitutesKeys(t *testing.T) {
	body := value.NewObject()
	body.Put("$name", value.NewInt(1))

	templates := value.NewObject()
	templates.Put("name", value.NewString("mtu"))

	out, err := instantiateTemplates(body, templates, nil)
	if err != nil {
		t.Fatalf("instantiateTemplates: %v", err)
	}
	if !out.Has("mtu") {
		t.Errorf("expected substituted key %q, got keys %v", "mtu", out.Keys())
	}
}

func TestInstantiateTemplatesPositionalArgs(t *testing.T) {
	body := value.NewObject()
	body.Put("iface", value.NewString("eth${1}"))

	out, err := instantiateTemplates(body, nil, []string{"0"})
	if err != nil {
		t.Fatalf("instantiateTemplates: %v", err)
	}
	got, _ := out.Get("iface").String()
	if want := "eth0"; got != want {
		t.Errorf("iface = %q, want %q", got, want)
	}
}

func TestInstantiateTemplatesMissingPlaceholderErrors(t *testing.T) {
	body := value.NewObject()
	body.Put("iface", value.NewString("eth${missing}"))

	if _, err := instantiateTemplates(body, nil, nil); err == nil {
		t.Fatal("expected an error for an unresolved placeholder")
	}
}
