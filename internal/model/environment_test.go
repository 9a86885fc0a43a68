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
	"os"
	"path/filepath"
	"testing"
)

func TestEnvironmentResolveSearchPath(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "iface.json")
	if err := os.WriteFile(schemaPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	env := &Environment{cache: map[string]*Model{}}
	env.AddLibraryDir(dir)

	got, err := env.Resolve("iface.json")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != schemaPath {
		t.Errorf("Resolve = %q, want %q", got, schemaPath)
	}
}

func TestEnvironmentResolveNotFound(t *testing.T) {
	env := &Environment{cache: map[string]*Model{}}
	if _, err := env.Resolve("does-not-exist.json"); err == nil {
		t.Fatal("expected an error for an unresolvable name")
	}
}

func TestEnvironmentResolvePrefersExplicitOverSearchPath(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "iface.json")
	if err := os.WriteFile(schemaPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	env := &Environment{cache: map[string]*Model{}}
	got, err := env.Resolve(schemaPath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != schemaPath {
		t.Errorf("Resolve = %q, want %q", got, schemaPath)
	}
}

func TestEnvironmentCacheRoundTrip(t *testing.T) {
	env := &Environment{cache: map[string]*Model{}}
	m := &Model{Name: "iface"}
	env.remember("/abs/iface.json", m)

	got, ok := env.cached("/abs/iface.json")
	if !ok || got != m {
		t.Fatalf("cached() = %v, %v, want the remembered model", got, ok)
	}

	env.Reset()
	if _, ok := env.cached("/abs/iface.json"); ok {
		t.Error("Reset() should clear the cache")
	}
}
