// Copyright 2019 CUE Authors
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

// Package encoding contains the format adapters json, yaml and toml, which
// convert between a document's source text and the generic value tree.
//
// Each subpackage registers a model.Adapter for its file extensions when it
// is imported: Extract parses source text into a value tree whose root is
// an object, and Dump renders a value tree back to source text.
package encoding
