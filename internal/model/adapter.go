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
	"path/filepath"
	"strings"
	"sync"

	"go.aceconf.dev/ace/internal/value"
)

// Adapter converts between a format's source text and the generic value
// tree (§1: "format adapters ... convert source text into, or emit from,
// the generic value tree; the core consumes only the value-tree
// interface"). Concrete adapters live under ace/encoding/{json,yaml,toml}
// and register themselves by extension, the way database/sql drivers
// register by name, so this package never imports them directly.
type Adapter interface {
	// Extract parses data (from the document named filename, used only for
	// position information) into a root value.Value, which must be an
	// Object (§6: "JSON/TOML/HJSON/YAML use Object root").
	Extract(filename string, data []byte) (*value.Value, error)

	// Dump renders v back to this format's source text, used by
	// DumpInstance and by round-trip tests.
	Dump(v *value.Value) ([]byte, error)
}

var (
	adaptersMu sync.RWMutex
	adapters   = map[string]Adapter{}
)

// RegisterAdapter installs a an Adapter for the given file extension
// (without the leading dot, e.g. "json"). Called from each encoding
// package's init.
func RegisterAdapter(ext string, a Adapter) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()
	adapters[strings.ToLower(ext)] = a
}

// adapterFor resolves the Adapter registered for filename's extension
// (§4.F step 2: "parse the file via the value-tree adapter inferred from
// extension").
func adapterFor(filename string) (Adapter, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	adaptersMu.RLock()
	a, ok := adapters[strings.ToLower(ext)]
	adaptersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("model: no format adapter registered for extension %q", ext)
	}
	return a, nil
}
