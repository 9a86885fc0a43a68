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

// Package model implements §4.F: a Model is the unit of schema — name,
// version, authors, doc, includes, templates, an ordered body of typed
// children and a hook list — built by Load and immutable thereafter.
package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/types"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// Author is one entry of a Model's "authors" list.
type Author struct {
	Name  string
	Email string
}

// Model is the loaded, flattened and validated unit of schema (§3, §4.F).
// Once Load returns a non-nil Model it is immutable; callers holding a
// reference, including other Models that included it, never observe it
// change.
type Model struct {
	Name    string
	Version string
	Authors []Author
	Doc     string

	// Includes maps an include entry's filename to the loaded sub-model,
	// populated during Load (§4.F step 4) and consulted by Class/Selector
	// resolution in internal/instance.
	Includes map[string]*Model

	// Body holds the top-level field schema in declaration order.
	Body       []types.BasicType
	bodyByName map[string]types.BasicType

	Hooks []Hook

	path string // absolute filename Load resolved this Model from
}

// Hook is one "(path, match-regex, replacement-pattern)" entry (§3, §6).
type Hook struct {
	Path        string
	Match       string
	Replacement string
}

// Get returns the top-level field named name, or nil.
func (m *Model) Get(name string) types.BasicType {
	return m.bodyByName[name]
}

// ResolveInclude looks up a Class/Selector model reference among this
// Model's loaded includes, first by the include entry's filename, then by
// the sub-model's own declared name (§3: "Class has a model reference
// (name of an included Model)" — schemas are free to name either).
func (m *Model) ResolveInclude(ref string) *Model {
	if sub, ok := m.Includes[ref]; ok {
		return sub
	}
	for _, sub := range m.Includes {
		if sub.Name == ref {
			return sub
		}
	}
	return nil
}

// Path returns the absolute filename this Model was loaded from, used as
// the cycle-detection key during include resolution.
func (m *Model) Path() string { return m.path }

// Load resolves filename against env's search path, parses it with the
// adapter inferred from its extension, and runs the full §4.F load
// algorithm: meta-schema check, recursive include loading (memoized and
// cycle-checked in env), template instantiation, BasicType construction,
// flattenModel and validateModel. It returns the first accumulated error
// list on any failing stage, matching spec.md §7's "pipeline aborts on the
// first stage that returns false".
func Load(env *Environment, filename string) (*Model, errors.List) {
	return load(env, filename, map[string]bool{})
}

func load(env *Environment, filename string, inProgress map[string]bool) (*Model, errors.List) {
	var list errors.List

	abs, err := env.Resolve(filename)
	if err != nil {
		list.Addf(filename, token.NoPos, "%v", err)
		return nil, list
	}
	abs, _ = filepath.Abs(abs)

	if inProgress[abs] {
		list.Addf(filename, token.NoPos, "include cycle detected at %q", abs)
		return nil, list
	}
	if cached, ok := env.cached(abs); ok {
		return cached, list
	}

	adapter, err := adapterFor(abs)
	if err != nil {
		list.Addf(filename, token.NoPos, "%v", err)
		return nil, list
	}
	data, ioErr := readFile(abs)
	if ioErr != nil {
		list.Addf(filename, token.NoPos, "%v", ioErr)
		return nil, list
	}
	root, err := adapter.Extract(abs, data)
	if err != nil {
		list.Addf(filename, token.NoPos, "%v", err)
		return nil, list
	}
	if root.Kind() != value.ObjectKind {
		list.Addf(filename, root.Pos(), "model document root must be an object")
		return nil, list
	}

	if checkList := checkModelSchema(root); len(checkList) > 0 {
		return nil, checkList
	}

	m := &Model{
		path:       abs,
		bodyByName: map[string]types.BasicType{},
		Includes:   map[string]*Model{},
	}
	m.Name, _ = root.Get("name").String()
	m.Version, _ = root.Get("version").String()
	if !semver.IsValid("v" + m.Version) {
		list.Addf(filename, root.Get("version").Pos(), "version %q is not a valid major.minor.patch", m.Version)
	}
	if d := root.Get("doc"); d != nil {
		m.Doc, _ = d.String()
	}
	if a := root.Get("authors"); a != nil {
		for _, el := range a.Array() {
			name, _ := el.String()
			m.Authors = append(m.Authors, parseAuthor(name))
		}
	}

	// Step 4: load includes, memoized and cycle-checked.
	inProgress[abs] = true
	if inc := root.Get("include"); inc != nil {
		for _, el := range inc.Array() {
			name, ok := el.String()
			if !ok {
				list.Addf(el.Path(), el.Pos(), "include entries must be strings")
				continue
			}
			sub, subList := load(env, name, inProgress)
			list = append(list, subList...)
			if sub != nil {
				m.Includes[name] = sub
				env.remember(sub.path, sub)
			}
		}
	}
	delete(inProgress, abs)
	if len(list) > 0 {
		return nil, list
	}

	// Step 5: template instantiation.
	body := root.Get("body")
	if body == nil {
		list.Addf(filename, root.Pos(), "missing required key \"body\"")
		return nil, list
	}
	if tmpl := root.Get("templates"); tmpl != nil {
		expanded, err := instantiateTemplates(body, tmpl, env.TemplateArgs)
		if err != nil {
			list.Addf(filename, tmpl.Pos(), "%v", err)
			return nil, list
		}
		body = expanded
	}

	// Step 6: construct BasicTypes.
	for _, name := range body.Keys() {
		field := body.Get(name)
		bt, btList := constructType(field, name, m)
		list = append(list, btList...)
		if bt != nil {
			m.Body = append(m.Body, bt)
			m.bodyByName[name] = bt
		}
	}

	if hooks := root.Get("hooks"); hooks != nil {
		hookList, hl := loadHooks(hooks)
		list = append(list, hl...)
		m.Hooks = hookList
	}

	if len(list) > 0 {
		return nil, list
	}

	// Step 7: flattenModel.
	for _, bt := range m.Body {
		list = append(list, bt.FlattenModel(nil)...)
	}
	if len(list) > 0 {
		return nil, list
	}

	// Step 8: validateModel.
	for _, bt := range m.Body {
		list = append(list, bt.ValidateModel()...)
	}
	if len(list) > 0 {
		return nil, list
	}

	env.remember(abs, m)
	return m, nil
}

func parseAuthor(s string) Author {
	// "Name <email>" per the common convention the teacher's own module
	// files (go.mod-adjacent LICENSE/AUTHORS) use; a bare name with no
	// angle-bracketed email is also accepted.
	for i := 0; i < len(s); i++ {
		if s[i] == '<' {
			end := i + 1
			for end < len(s) && s[end] != '>' {
				end++
			}
			name := trimSpace(s[:i])
			email := s[i+1 : end]
			return Author{Name: name, Email: email}
		}
	}
	return Author{Name: trimSpace(s)}
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

// modelSchema is the meta-schema of a Model document (§4.F step 3):
// required keys name, version, body; optional authors, include, templates,
// hooks, doc.
var modelSchema = value.Schema{
	"name":      {Kinds: []value.Kind{value.StringKind}},
	"version":   {Kinds: []value.Kind{value.StringKind}},
	"body":      {Kinds: []value.Kind{value.ObjectKind}},
	"authors":   {Kinds: []value.Kind{value.ArrayKind}, Optional: true},
	"include":   {Kinds: []value.Kind{value.ArrayKind}, Optional: true},
	"templates": {Kinds: []value.Kind{value.ObjectKind}, Optional: true},
	"hooks":     {Kinds: []value.Kind{value.ArrayKind}, Optional: true},
	"doc":       {Kinds: []value.Kind{value.StringKind}, Optional: true},
}

// checkModelSchema validates root's shape against modelSchema via
// value.Checker (§4.A). Instance checking does not use value.Checker; it
// walks each Model body itself in internal/instance.
func checkModelSchema(root *value.Value) errors.List {
	return value.Checker{Header: "model"}.Check(root, modelSchema)
}

func constructType(field *value.Value, name string, owner *Model) (types.BasicType, errors.List) {
	var list errors.List
	if field.Kind() != value.ObjectKind {
		list.Addf(field.Path(), field.Pos(), "field %q: expected an object", name)
		return nil, list
	}
	kindVal := field.Get("type")
	if kindVal == nil {
		list.Addf(field.Path(), field.Pos(), "field %q: missing required key \"type\"", name)
		return nil, list
	}
	kindStr, ok := kindVal.String()
	if !ok {
		list.Addf(kindVal.Path(), kindVal.Pos(), "type: expected a string")
		return nil, list
	}
	kind, ok := types.ParseKind(kindStr)
	if !ok {
		list.Addf(kindVal.Path(), kindVal.Pos(), "unknown type %q", kindStr)
		return nil, list
	}

	var bt types.BasicType
	switch kind {
	case types.Boolean:
		bt = types.NewBoolean(name)
	case types.Integer:
		bt = types.NewInteger(name)
	case types.Float:
		bt = types.NewFloat(name)
	case types.String:
		bt = types.NewString(name)
	case types.Enum:
		bt = types.NewEnum(name)
	case types.File:
		bt = types.NewFile(name)
	case types.IPv4:
		bt = types.NewIPv4(name)
	case types.MAC:
		bt = types.NewMAC(name)
	case types.URI:
		bt = types.NewURI(name)
	case types.CPUID:
		bt = types.NewCPUID(name)
	case types.Class:
		bt = types.NewClass(name)
	case types.Selector:
		bt = types.NewSelector(name)
	default:
		list.Addf(kindVal.Path(), kindVal.Pos(), "unsupported type %q", kindStr)
		return nil, list
	}

	if setter, ok := bt.(interface{ SetParentPath(string) }); ok {
		setter.SetParentPath(owner.Name)
	}
	list = append(list, bt.LoadModel(field)...)
	return bt, list
}

func loadHooks(v *value.Value) ([]Hook, errors.List) {
	var list errors.List
	var out []Hook
	if v.Kind() != value.ArrayKind {
		list.Addf(v.Path(), v.Pos(), "hooks: expected an array")
		return nil, list
	}
	for _, el := range v.Array() {
		s, ok := el.String()
		if !ok {
			list.Addf(el.Path(), el.Pos(), "hooks: entries must be strings")
			continue
		}
		h, err := parseHook(s)
		if err != nil {
			list.Addf(el.Path(), el.Pos(), "%v", err)
			continue
		}
		out = append(out, h)
	}
	return out, list
}

// parseHook splits a "path:match-regex:replacement" entry (§6: "three
// colon-separated fields"), ported from the original's plain
// split(s, ':', elems) (original_source/libace/model/Hook.cpp:34-36): the
// field separator is every ':' in s, with no escaping at the field-split
// level. A backslash is only meaningful inside Match/Replacement, where
// regexutil interprets "\1".."\9" as back-references and "\\" as a literal
// backslash (§4.C); splitting must leave those bytes untouched so they reach
// regexutil intact.
func parseHook(s string) (Hook, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return Hook{}, fmt.Errorf("hook %q: expected 3 colon-separated fields, got %d", s, len(fields))
	}
	return Hook{Path: fields[0], Match: fields[1], Replacement: fields[2]}, nil
}
