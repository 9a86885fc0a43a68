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

// Package json is the JSON [model.Adapter] (§1, §6): it converts between
// JSON source text and the generic value tree the model and instance
// engines consume.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

func init() {
	model.RegisterAdapter("json", adapter{})
}

type adapter struct{}

// Extract decodes data with encoding/json's token scanner rather than
// Unmarshal into interface{}, so object key order survives (§3: "Objects
// preserve insertion order of keys"), and with UseNumber so numbers keep
// their int/float distinction instead of all decoding as float64.
func (adapter) Extract(filename string, data []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec, filename)
	if err != nil {
		return nil, fmt.Errorf("json: %s: %w", filename, err)
	}
	if v.Kind() != value.ObjectKind {
		return nil, fmt.Errorf("json: %s: root must be an object, got %s", filename, v.Kind())
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, filename string) (*value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok, filename)
}

func decodeToken(dec *json.Decoder, tok json.Token, filename string) (*value.Value, error) {
	pos := token.Pos{Filename: filename}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			b := value.NewObjectBuilder()
			obj := b.Value()
			obj.SetPos(pos)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("json: non-string object key %v", keyTok)
				}
				child, err := decodeValue(dec, filename)
				if err != nil {
					return nil, err
				}
				if err := b.Put(key, child); err != nil {
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := value.NewArray()
			arr.SetPos(pos)
			for dec.More() {
				child, err := decodeValue(dec, filename)
				if err != nil {
					return nil, err
				}
				arr.Push(child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			v := value.NewInt(i)
			v.SetPos(pos)
			return v, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("json: bad number %q: %w", t.String(), err)
		}
		v := value.NewFloat(f)
		v.SetPos(pos)
		return v, nil
	case string:
		v := value.NewString(t)
		v.SetPos(pos)
		return v, nil
	case bool:
		v := value.NewBool(t)
		v.SetPos(pos)
		return v, nil
	case nil:
		v := value.NewString("")
		v.SetPos(pos)
		return v, nil
	}
	return nil, fmt.Errorf("json: unexpected token %v", tok)
}

// Dump renders v back to indented JSON text.
func (adapter) Dump(v *value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v *value.Value, indent int) error {
	switch v.Kind() {
	case value.ObjectKind:
		buf.WriteString("{")
		keys := v.Keys()
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(",")
			}
			writeNewlineIndent(buf, indent+1)
			writeJSONString(buf, k)
			buf.WriteString(": ")
			if err := encodeValue(buf, v.Get(k), indent+1); err != nil {
				return err
			}
		}
		if len(keys) > 0 {
			writeNewlineIndent(buf, indent)
		}
		buf.WriteString("}")
	case value.ArrayKind:
		buf.WriteString("[")
		arr := v.Array()
		for i, e := range arr {
			if i > 0 {
				buf.WriteString(",")
			}
			writeNewlineIndent(buf, indent+1)
			if err := encodeValue(buf, e, indent+1); err != nil {
				return err
			}
		}
		if len(arr) > 0 {
			writeNewlineIndent(buf, indent)
		}
		buf.WriteString("]")
	case value.StringKind:
		s, _ := v.String()
		writeJSONString(buf, s)
	case value.IntKind:
		i, _ := v.Int()
		fmt.Fprintf(buf, "%d", i)
	case value.FloatKind:
		f, _ := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("json: cannot encode non-finite float")
		}
		fmt.Fprintf(buf, "%v", f)
	case value.BoolKind:
		b, _ := v.Bool()
		fmt.Fprintf(buf, "%v", b)
	default:
		return fmt.Errorf("json: cannot encode value of kind %s", v.Kind())
	}
	return nil
}

func writeNewlineIndent(buf *bytes.Buffer, indent int) {
	buf.WriteByte('\n')
	for i := 0; i < indent; i++ {
		buf.WriteString("  ")
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
