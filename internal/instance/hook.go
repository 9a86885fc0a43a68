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

package instance

import (
	"fmt"

	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/path"
	"go.aceconf.dev/ace/internal/regexutil"
	"go.aceconf.dev/ace/internal/value"
)

// applyHooks runs m's own hook list over scope, in declaration order, each
// hook seeing the outputs of the ones before it (§4.G: "fixed order, not
// to fixed point"). A hook's path is resolved against scope for a Local
// anchor and against root for a Global one, exactly like a dependency path.
func applyHooks(m *model.Model, root, scope *value.Value) error {
	for _, h := range m.Hooks {
		p, err := path.Parse(h.Path)
		if err != nil {
			return fmt.Errorf("hook %q: %w", h.Path, err)
		}
		for _, target := range value.Walk(root, scope, p) {
			if target.Kind() != value.StringKind {
				continue
			}
			s, _ := target.String()
			ok, err := regexutil.Match(s, h.Match)
			if err != nil {
				return fmt.Errorf("hook %q: %w", h.Path, err)
			}
			if !ok {
				continue
			}
			out, err := regexutil.Expand(s, h.Match, h.Replacement)
			if err != nil {
				return fmt.Errorf("hook %q at %s: %w", h.Path, target.Path(), err)
			}
			target.SetString(out)
		}
	}
	return nil
}
