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

	"go.aceconf.dev/ace/internal/value"
)

// LoadInstance reads filename with the format adapter inferred from its
// extension (the same mechanism Load uses for schema documents), returning
// the raw value tree for instance validation. Unlike Load, no meta-schema
// or Model lifecycle applies: the document's shape is purely up to the
// Model it will be validated against.
func LoadInstance(filename string) (*value.Value, error) {
	adapter, err := adapterFor(filename)
	if err != nil {
		return nil, err
	}
	data, err := readFile(filename)
	if err != nil {
		return nil, fmt.Errorf("model: %s: %w", filename, err)
	}
	return adapter.Extract(filename, data)
}

// DumpInstance renders v with the format adapter inferred from filename's
// extension, the write-side counterpart of LoadInstance.
func DumpInstance(filename string, v *value.Value) ([]byte, error) {
	adapter, err := adapterFor(filename)
	if err != nil {
		return nil, err
	}
	return adapter.Dump(v)
}
