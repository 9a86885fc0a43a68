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

package types

import (
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
)

// dependencySatisfied implements the trigger grammar of §4.G/§6: "X@P" —
// at path P, value must equal X for primitives, must contain X for
// enumerations (arrays), and "*" means "P must merely exist".
func dependencySatisfied(root, scope *value.Value, d attribute.Dependency) bool {
	targets := value.Walk(root, scope, d.Path)
	if d.Trigger == "*" {
		return len(targets) > 0
	}
	if len(targets) == 0 {
		return false
	}
	for _, t := range targets {
		switch t.Kind() {
		case value.ArrayKind:
			for _, el := range t.Array() {
				if s, ok := el.Scalar(); ok && s == d.Trigger {
					return true
				}
			}
		default:
			if s, ok := t.Scalar(); ok && s == d.Trigger {
				return true
			}
		}
	}
	return false
}
