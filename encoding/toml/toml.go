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

// Package toml is the TOML [model.Adapter] (§1, §6). Like the teacher's own
// encoder, it goes through map[string]any rather than preserving source
// key order: go-toml/v2's stable API has no ordered-map or position-bearing
// tree the way its own internal/unstable parser does, and that package is
// not meant to be imported directly (see the teacher's own encode.go TODO).
package toml

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/value"
)

func init() {
	model.RegisterAdapter("toml", adapter{})
}

type adapter struct{}

func (adapter) Extract(filename string, data []byte) (*value.Value, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("toml: %s: %w", filename, err)
	}
	return fromAny(m), nil
}

func fromAny(a any) *value.Value {
	switch t := a.(type) {
	case map[string]any:
		obj := value.NewObject()
		for k, v := range t {
			obj.Put(k, fromAny(v))
		}
		return obj
	case []any:
		arr := value.NewArray()
		for _, e := range t {
			arr.Push(fromAny(e))
		}
		return arr
	case string:
		return value.NewString(t)
	case int64:
		return value.NewInt(t)
	case int:
		return value.NewInt(int64(t))
	case float64:
		return value.NewFloat(t)
	case bool:
		return value.NewBool(t)
	default:
		return value.NewString(fmt.Sprintf("%v", t))
	}
}

func (adapter) Dump(v *value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toAny(v)); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return buf.Bytes(), nil
}

func toAny(v *value.Value) any {
	switch v.Kind() {
	case value.ObjectKind:
		m := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			m[k] = toAny(v.Get(k))
		}
		return m
	case value.ArrayKind:
		arr := v.Array()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = toAny(e)
		}
		return out
	case value.StringKind:
		s, _ := v.String()
		return s
	case value.IntKind:
		i, _ := v.Int()
		return i
	case value.FloatKind:
		f, _ := v.Float()
		return f
	case value.BoolKind:
		b, _ := v.Bool()
		return b
	default:
		return nil
	}
}
