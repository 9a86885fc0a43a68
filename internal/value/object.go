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

// Object is an ordered string-keyed map: it preserves insertion order while
// still offering O(1) lookup (§3). Callers reach it through Value.Object;
// construction goes through Value.Put.
type Object struct {
	index map[string]int
	keys  []string
	vals  []*Value
}

func newObjectData() *Object {
	return &Object{index: map[string]int{}}
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Get returns the value at key, or nil.
func (o *Object) Get(key string) *Value {
	i, ok := o.index[key]
	if !ok {
		return nil
	}
	return o.vals[i]
}

// put inserts v at key, replacing any existing value at that key in place
// (preserving its position), or appending if the key is new.
func (o *Object) put(key string, v *Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// delete removes key, preserving the relative order of the remaining keys.
func (o *Object) delete(key string) {
	i, ok := o.index[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for k, idx := range o.index {
		if idx > i {
			o.index[k] = idx - 1
		}
	}
}

// Values returns the values in key-insertion order.
func (o *Object) Values() []*Value {
	out := make([]*Value, len(o.vals))
	copy(out, o.vals)
	return out
}
