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

// Package ace is the public entry point of the schema compiler (§1, §4.F,
// §4.G): load a Model from a schema document, then validate an instance
// document against it. Format adapters for JSON, YAML and TOML register
// themselves by side effect; importers that only need one format can
// import that ace/encoding/* package directly instead of this one.
package ace

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/instance"
	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"

	_ "go.aceconf.dev/ace/encoding/json"
	_ "go.aceconf.dev/ace/encoding/toml"
	_ "go.aceconf.dev/ace/encoding/yaml"
)

// Environment is the library search path and template-argument source a
// schema is loaded against (§4.F: replaces the source's process-wide
// Master singleton with an explicit value).
type Environment = model.Environment

// NewEnvironment builds an Environment seeded from ACE_LIBRARY_PATH.
func NewEnvironment() *Environment { return model.NewEnvironment() }

// Model is a loaded, flattened and validated schema document (§3, §4.F).
type Model = model.Model

// LoadModel resolves filename against env's search path and parses it with
// the format adapter inferred from its extension, running the full load
// pipeline: meta-schema check, include resolution, template instantiation,
// BasicType construction, flattenModel, validateModel.
func LoadModel(env *Environment, filename string) (*Model, errors.List) {
	return model.Load(env, filename)
}

// LoadInstanceDocument reads filename with the format adapter inferred
// from its extension, without validating it against any Model.
func LoadInstanceDocument(filename string) (*value.Value, error) {
	return model.LoadInstance(filename)
}

// Validate runs the check -> expand -> flatten -> resolve -> final-sweep
// pipeline (§4.F, §4.G) for doc against m, returning the expanded,
// resolved instance tree, or the diagnostics from the first stage that
// failed.
func Validate(m *Model, doc *value.Value) (*value.Value, errors.List) {
	return instance.Validate(m, doc)
}

// ValidateFile loads filename as an instance document and validates it
// against m in one call.
func ValidateFile(m *Model, filename string) (*value.Value, errors.List) {
	doc, err := LoadInstanceDocument(filename)
	if err != nil {
		var list errors.List
		list.Addf(filename, token.NoPos, "%v", err)
		return nil, list
	}
	return Validate(m, doc)
}
