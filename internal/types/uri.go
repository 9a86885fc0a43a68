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

package types

import (
	"fmt"
	"net/url"
	"strings"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
	"go.aceconf.dev/ace/token"
)

// URIType is a string FormatChecker<string> type restricted to a
// model-declared set of schemes (§6: "schemes for URI"). An empty schemes
// set imposes no scheme restriction beyond requiring a parseable URI.
type URIType struct {
	Base
	eitherAttr *attribute.Either
	schemes    []string
}

func NewURI(name string) *URIType {
	return &URIType{Base: NewBase(URI, name), eitherAttr: attribute.NewEither().(*attribute.Either)}
}

func (t *URIType) CollectIncludes() []string { return nil }

func (t *URIType) LoadModel(schema *value.Value) errors.List {
	list := t.LoadCommon(schema)
	if schema == nil {
		return list
	}
	if e := schema.Get("either"); e != nil {
		if err := t.eitherAttr.CheckModel(e); err != nil {
			list.Addf(e.Path(), e.Pos(), "either: %v", err)
		} else if err := t.eitherAttr.LoadModel(e); err != nil {
			list.Addf(e.Path(), e.Pos(), "either: %v", err)
		}
	}
	if s := schema.Get("schemes"); s != nil {
		if s.Kind() != value.ArrayKind {
			list.Addf(s.Path(), s.Pos(), "schemes: expected an array of strings")
		} else {
			for _, el := range s.Array() {
				sch, ok := el.String()
				if !ok {
					list.Addf(el.Path(), el.Pos(), "schemes: elements must be strings")
					continue
				}
				t.schemes = append(t.schemes, strings.ToLower(sch))
			}
		}
	}
	return list
}

func (t *URIType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*URIType); ok {
		p = &pt.Base
		t.eitherAttr.Merge(pt.eitherAttr)
		if len(t.schemes) == 0 {
			t.schemes = pt.schemes
		}
	}
	return t.FlattenCommon(p)
}

func (t *URIType) ValidateModel() errors.List {
	var list errors.List
	for _, s := range t.eitherAttr.Values() {
		if err := checkURI(s, t.schemes); err != nil {
			list.Addf(t.Path(), token.NoPos, "either value %q: %v", s, err)
		}
	}
	if def := t.Default(); def != nil {
		s, ok := def.String()
		if !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be a string")
		} else if err := checkURI(s, t.schemes); err != nil {
			list.Addf(t.Path(), def.Pos(), "default value %q: %v", s, err)
		}
	}
	return list
}

// checkURI parses s as a URI and, if schemes is non-empty, requires its
// scheme to be a case-insensitive member of it, matching URI.h's
// URISchemaCompare notion of a restricted scheme set.
func checkURI(s string, schemes []string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("not a valid URI: %v", err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("missing scheme")
	}
	if len(schemes) == 0 {
		return nil
	}
	want := strings.ToLower(u.Scheme)
	for _, sch := range schemes {
		if sch == want {
			return nil
		}
	}
	return fmt.Errorf("scheme %q is not one of %v", u.Scheme, schemes)
}

func (t *URIType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	s, _ := v.String()
	if err := checkURI(s, t.schemes); err != nil {
		list.Addf(v.Path(), v.Pos(), "%v", err)
	}
	list = append(list, t.eitherAttr.Validate(root, v)...)
	return list
}

func (t *URIType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *URIType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *URIType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *URIType) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	c.schemes = append([]string(nil), t.schemes...)
	return &c
}
