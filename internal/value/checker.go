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

import "go.aceconf.dev/ace/errors"

// Pattern describes the accepted shape of one key in a Schema: the set of
// Kinds that are legal there, and whether the key may be absent.
type Pattern struct {
	Kinds    []Kind
	Optional bool
}

func (p Pattern) accepts(k Kind) bool {
	for _, want := range p.Kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Schema maps an object key to the Pattern it must satisfy.
type Schema map[string]Pattern

// Checker validates an Object value against a Schema (§4.A). Every
// violation is accumulated onto the checker's header-tagged error list
// rather than stopping at the first; Check returns the accumulated list so
// callers can decide whether len(list) == 0.
type Checker struct {
	// Header is prefixed to every diagnostic emitted by this checker, e.g.
	// "model" or "instance", so violations from different stages can be
	// told apart in a combined log.
	Header string
}

// Check validates v (which must be an ObjectKind) against schema, returning
// one diagnostic per violation.
func (c Checker) Check(v *Value, schema Schema) errors.List {
	var list errors.List
	if v.Kind() != ObjectKind {
		list.Addf(v.Path(), v.Pos(), "%s: expected object, got %s", c.Header, v.Kind())
		return list
	}
	for _, key := range v.Keys() {
		pat, ok := schema[key]
		if !ok {
			list.Addf(v.Get(key).Path(), v.Get(key).Pos(), "%s: unknown key %q", c.Header, key)
			continue
		}
		child := v.Get(key)
		if !pat.accepts(child.Kind()) {
			list.Addf(child.Path(), child.Pos(), "%s: key %q has wrong type: expected one of %v, got %s", c.Header, key, pat.Kinds, child.Kind())
		}
	}
	for key, pat := range schema {
		if pat.Optional {
			continue
		}
		if !v.Has(key) {
			list.Addf(v.Path(), v.Pos(), "%s: missing required key %q", c.Header, key)
		}
	}
	return list
}
