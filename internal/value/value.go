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

// Package value implements the generic dynamic tree (§3, §4.A of the
// schema) that format adapters produce and the model/instance engines
// consume. It is the one data structure shared between schema loading and
// instance checking.
package value

import (
	"strconv"

	"github.com/google/uuid"

	"go.aceconf.dev/ace/token"
)

// Kind enumerates the variants a Value can hold.
type Kind int

const (
	Undefined Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "undefined"
	}
}

// Value is a node in the generic tree. Every Value carries the name it was
// reached by within its parent (a key for Object children, the decimal
// index for Array elements) and a back-pointer to that parent so its path
// can be reconstructed on demand (§3: "a value's path ... equals the
// concatenation of named/indexed steps from the root").
type Value struct {
	kind   Kind
	name   string
	parent *Value
	pos    token.Pos
	id     string

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Value
	obj *Object
}

// NewBool, NewInt, NewFloat and NewString construct detached leaf values
// (no parent, no name); callers attach them via Object.Put or Array.Push.
func NewBool(b bool) *Value    { return &Value{kind: BoolKind, b: b, id: newID()} }
func NewInt(i int64) *Value    { return &Value{kind: IntKind, i: i, id: newID()} }
func NewFloat(f float64) *Value { return &Value{kind: FloatKind, f: f, id: newID()} }
func NewString(s string) *Value { return &Value{kind: StringKind, s: s, id: newID()} }

// NewArray constructs an empty array value.
func NewArray() *Value {
	return &Value{kind: ArrayKind, id: newID()}
}

// NewObject constructs an empty object value.
func NewObject() *Value {
	return &Value{kind: ObjectKind, obj: newObjectData(), id: newID()}
}

func newID() string {
	// Object identity numbers (§5) need only be unique within a process for
	// log correlation, not globally unique or ordered; a uuid's first
	// eight characters are cheaper to read in logs than a full uuid.
	u := uuid.New()
	return u.String()[:8]
}

// Kind reports the variant held by v.
func (v *Value) Kind() Kind { return v.kind }

// ID returns the diagnostic identity number for v (§5).
func (v *Value) ID() string { return v.id }

// Name returns the key or index v was reached by within its parent, or ""
// at the root.
func (v *Value) Name() string { return v.name }

// Parent returns the owning Object or Array value, or nil at the root.
func (v *Value) Parent() *Value { return v.parent }

// Pos returns the source position an adapter attached to v, if any.
func (v *Value) Pos() token.Pos { return v.pos }

// SetPos attaches adapter-provided source position information.
func (v *Value) SetPos(p token.Pos) { v.pos = p }

// Path reconstructs the dotted/indexed path from the root to v, e.g.
// "a.b[2].c". The root itself has path "".
func (v *Value) Path() string {
	var steps []string
	for cur := v; cur != nil && cur.parent != nil; cur = cur.parent {
		if cur.parent.kind == ArrayKind {
			steps = append(steps, "["+cur.name+"]")
		} else {
			steps = append(steps, "."+cur.name)
		}
	}
	if len(steps) == 0 {
		return ""
	}
	out := ""
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		if s[0] == '.' && out == "" {
			out = s[1:]
		} else {
			out += s
		}
	}
	return out
}

// --- scalar accessors ---

func (v *Value) Bool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

func (v *Value) Int() (int64, bool) {
	if v.kind != IntKind {
		return 0, false
	}
	return v.i, true
}

func (v *Value) Float() (float64, bool) {
	switch v.kind {
	case FloatKind:
		return v.f, true
	case IntKind:
		return float64(v.i), true
	default:
		return 0, false
	}
}

func (v *Value) String() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// SetString overwrites a StringKind leaf's content in place, used by the
// hook pass (§4.G) to substitute regex-matched values without disturbing
// the node's identity, parent or position.
func (v *Value) SetString(s string) {
	if v.kind != StringKind {
		return
	}
	v.s = s
}

// Scalar reports whether v holds a primitive leaf and renders it as a
// string for diagnostics and hook matching.
func (v *Value) Scalar() (string, bool) {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b), true
	case IntKind:
		return strconv.FormatInt(v.i, 10), true
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64), true
	case StringKind:
		return v.s, true
	default:
		return "", false
	}
}

// --- array accessors ---

// Array returns the element slice; nil if v is not an ArrayKind.
func (v *Value) Array() []*Value {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}

// Push appends child to v, an array value, stamping its name and parent.
func (v *Value) Push(child *Value) {
	child.name = strconv.Itoa(len(v.arr))
	child.parent = v
	v.arr = append(v.arr, child)
}

// Len returns the number of elements (ArrayKind) or keys (ObjectKind).
func (v *Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return v.obj.Len()
	default:
		return 0
	}
}

// --- object accessors ---

// Object returns the underlying ordered map; nil if v is not an ObjectKind.
func (v *Value) Object() *Object { return v.obj }

// Has reports whether the object v has a key.
func (v *Value) Has(key string) bool {
	if v.kind != ObjectKind {
		return false
	}
	return v.obj.Has(key)
}

// Get returns the value at key, or nil.
func (v *Value) Get(key string) *Value {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj.Get(key)
}

// Put inserts or replaces child at key, stamping its name and parent.
// Duplicate puts replace in place, preserving original insertion order
// (§3: "Objects preserve insertion order of keys").
func (v *Value) Put(key string, child *Value) {
	if v.kind != ObjectKind {
		panic("value: Put on non-object value")
	}
	child.name = key
	child.parent = v
	v.obj.put(key, child)
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj.Keys()
}

// Delete removes key from v, an object value, if present. Used by the
// instance engine to drop a field whose dependency predicate is
// unsatisfied (§4.G).
func (v *Value) Delete(key string) {
	if v.kind != ObjectKind {
		return
	}
	v.obj.delete(key)
}
