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
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/types"
	"go.aceconf.dev/ace/internal/value"
)

// Flatten is §4.F step 4: "flattenInstance(root, root)". It calls each
// field type's FlattenInstance and recurses into Class/Selector
// sub-models; no kind in internal/types changes the tree at this stage.
func Flatten(m *model.Model, root, scope *value.Value) errors.List {
	var list errors.List
	for _, bt := range m.Body {
		fv := scope.Get(bt.Name())
		list = append(list, bt.FlattenInstance(root, fv)...)
		if fv == nil {
			continue
		}
		switch t := bt.(type) {
		case *types.ClassType:
			sub := m.ResolveInclude(t.ModelName)
			if sub == nil {
				continue
			}
			for _, obj := range classElements(fv) {
				list = append(list, Flatten(sub, root, obj)...)
			}
		case *types.SelectorType:
			for _, obj := range classElements(fv) {
				if obj.Kind() != value.ObjectKind {
					continue
				}
				disc := obj.Get(t.Discriminant)
				if disc == nil {
					continue
				}
				s, ok := disc.Scalar()
				if !ok {
					continue
				}
				branchName, ok := t.Branch(s)
				if !ok {
					continue
				}
				sub := m.ResolveInclude(branchName)
				if sub == nil {
					continue
				}
				list = append(list, Flatten(sub, root, obj)...)
			}
		}
	}
	return list
}
