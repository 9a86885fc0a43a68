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

package value

import "fmt"

// ObjectBuilder accumulates keys for an Object value while parsing a source
// document (the JSON and YAML adapters build objects with it). Unlike Value.Put (which silently replaces on a duplicate key,
// the steady-state behavior used by the model/instance engines), a
// ObjectBuilder is used in "parse mode" (§3, §9): a duplicate key is a
// document error, not a replace.
type ObjectBuilder struct {
	v    *Value
	seen map[string]bool
}

// NewObjectBuilder starts building a new object value.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{v: NewObject(), seen: map[string]bool{}}
}

// Put adds key to the object under construction. It returns an error if key
// was already added.
func (b *ObjectBuilder) Put(key string, v *Value) error {
	if b.seen[key] {
		return fmt.Errorf("duplicate key %q", key)
	}
	b.seen[key] = true
	b.v.Put(key, v)
	return nil
}

// Value returns the constructed object.
func (b *ObjectBuilder) Value() *Value { return b.v }
