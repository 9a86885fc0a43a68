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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment replaces the source's process-wide Master singleton (§3:
// "recast as an explicit Environment in the target design", per §9 Open
// Questions) with an explicit, non-global value: library search
// directories plus a memoized cache of loaded Models, scoped to one
// compilation the way §5 requires ("owned by one compilation at a time").
//
// Search path precedence, supplementing spec.md from
// include/ace/filesystem/Path.h: explicit directories added via
// AddLibraryDir are tried before the ACE_LIBRARY_PATH environment
// variable's entries, which are tried in order.
type Environment struct {
	dirs  []string
	cache map[string]*Model
	// TemplateArgs makes process argv available to Model.Load for
	// "${1}"/"${2}"-style template placeholders sourced from the CLI
	// invocation, per libace/common/Arguments.cpp.
	TemplateArgs []string
}

// NewEnvironment constructs an Environment whose search path is seeded
// from ACE_LIBRARY_PATH (colon-joined, per the filesystem supplement).
func NewEnvironment() *Environment {
	env := &Environment{cache: map[string]*Model{}}
	if v := os.Getenv("ACE_LIBRARY_PATH"); v != "" {
		env.dirs = append(env.dirs, strings.Split(v, ":")...)
	}
	return env
}

// AddLibraryDir prepends dir to the search path, taking precedence over
// both previously-added directories and ACE_LIBRARY_PATH, matching
// ace-verify/-explain's repeatable "-L" flag (last one added wins first).
func (e *Environment) AddLibraryDir(dir string) {
	e.dirs = append([]string{dir}, e.dirs...)
}

// Resolve finds name on the search path, trying name verbatim first (it
// may already be relative or absolute), then each search directory joined
// with name (§4.F step 1: "fail with file-not-found if unresolved").
func (e *Environment) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	} else if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range e.dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("model: %q not found on library search path", name)
}

// Reset discards the memoized model cache (§5: "lifecycle init-on-first-
// use and explicit reset()"), keeping the search path.
func (e *Environment) Reset() {
	e.cache = map[string]*Model{}
}

func (e *Environment) cached(abs string) (*Model, bool) {
	m, ok := e.cache[abs]
	return m, ok
}

func (e *Environment) remember(abs string, m *Model) {
	e.cache[abs] = m
}
