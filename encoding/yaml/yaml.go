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

// Package yaml is the YAML [model.Adapter] (§1, §6): it converts between
// YAML source text and the generic value tree, retaining key order and
// line/column position via yaml.v3's Node API.
package yaml

import (
	"bytes"
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

func init() {
	model.RegisterAdapter("yaml", adapter{})
	model.RegisterAdapter("yml", adapter{})
}

type adapter struct{}

// Extract decodes data into a yaml.Node tree rather than interface{}, so
// mapping keys keep their source order (§3) and every node keeps the
// line/column yaml.v3 assigns it while scanning.
func (adapter) Extract(filename string, data []byte) (*value.Value, error) {
	var doc goyaml.Node
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %s: %w", filename, err)
	}
	if len(doc.Content) == 0 {
		return value.NewObject(), nil
	}
	v, err := decodeNode(doc.Content[0], filename)
	if err != nil {
		return nil, fmt.Errorf("yaml: %s: %w", filename, err)
	}
	if v.Kind() != value.ObjectKind {
		return nil, fmt.Errorf("yaml: %s: root must be a mapping, got %s", filename, v.Kind())
	}
	return v, nil
}

func decodeNode(n *goyaml.Node, filename string) (*value.Value, error) {
	pos := token.Pos{Filename: filename, Line: n.Line, Column: n.Column}
	switch n.Kind {
	case goyaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.NewObject(), nil
		}
		return decodeNode(n.Content[0], filename)
	case goyaml.MappingNode:
		b := value.NewObjectBuilder()
		obj := b.Value()
		obj.SetPos(pos)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			child, err := decodeNode(n.Content[i+1], filename)
			if err != nil {
				return nil, err
			}
			if err := b.Put(key, child); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case goyaml.SequenceNode:
		arr := value.NewArray()
		arr.SetPos(pos)
		for _, c := range n.Content {
			child, err := decodeNode(c, filename)
			if err != nil {
				return nil, err
			}
			arr.Push(child)
		}
		return arr, nil
	case goyaml.ScalarNode:
		return decodeScalar(n, pos)
	case goyaml.AliasNode:
		return decodeNode(n.Alias, filename)
	default:
		return nil, fmt.Errorf("yaml: unsupported node kind %v", n.Kind)
	}
}

func decodeScalar(n *goyaml.Node, pos token.Pos) (*value.Value, error) {
	switch n.Tag {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		v := value.NewInt(i)
		v.SetPos(pos)
		return v, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		v := value.NewFloat(f)
		v.SetPos(pos)
		return v, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		v := value.NewBool(b)
		v.SetPos(pos)
		return v, nil
	case "!!null":
		v := value.NewString("")
		v.SetPos(pos)
		return v, nil
	default:
		v := value.NewString(n.Value)
		v.SetPos(pos)
		return v, nil
	}
}

// Dump renders v back to YAML text, building a *yaml.Node tree by hand
// rather than marshalling a plain interface{} so that mapping key order
// survives the round trip (yaml.v3's Marshal otherwise sorts map keys).
func (adapter) Dump(v *value.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := goyaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toNode(v)); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	enc.Close()
	return buf.Bytes(), nil
}

func toNode(v *value.Value) *goyaml.Node {
	switch v.Kind() {
	case value.ObjectKind:
		n := &goyaml.Node{Kind: goyaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys() {
			n.Content = append(n.Content,
				&goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: k},
				toNode(v.Get(k)))
		}
		return n
	case value.ArrayKind:
		n := &goyaml.Node{Kind: goyaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Array() {
			n.Content = append(n.Content, toNode(e))
		}
		return n
	case value.StringKind:
		s, _ := v.String()
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: s}
	case value.IntKind:
		i, _ := v.Int()
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", i)}
	case value.FloatKind:
		f, _ := v.Float()
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!float", Value: fmt.Sprintf("%v", f)}
	case value.BoolKind:
		b, _ := v.Bool()
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%v", b)}
	default:
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
