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

// Package instance implements §4.G: the check -> expand -> flatten ->
// resolve pipeline that walks an instance value tree against a loaded
// Model, plus the Model-owned hook-application pass. It sits above
// internal/model and internal/types, and is the one package allowed to
// recurse a Class/Selector field into its referenced Model, since it is
// the first layer in the hierarchy that has both a types.BasicType and a
// *model.Model in scope at once.
package instance

import (
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/value"
)

// Validate runs the full §4.F "Model::validate" pipeline against root,
// mutating it in place (defaults inserted, arity unfolded, hooks applied)
// and returning the resolved tree, or the errors from whichever stage
// first failed.
func Validate(m *model.Model, root *value.Value) (*value.Value, errors.List) {
	if list := Check(m, root, root); len(list) > 0 {
		return nil, list
	}
	expanded, list := Expand(m, root, root)
	if len(list) > 0 {
		return nil, list
	}
	if list := Flatten(m, root, expanded); len(list) > 0 {
		return nil, list
	}
	if list := Resolve(m, root, expanded); len(list) > 0 {
		return nil, list
	}
	if list := finalSweep(m, root, expanded); len(list) > 0 {
		return nil, list
	}
	return expanded, nil
}
