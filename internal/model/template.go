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

package model

import (
	"fmt"
	"regexp"
	"strconv"

	"go.aceconf.dev/ace/internal/value"
)

// placeholderRe matches "${name}" tokens inside strings (§4.F step 5):
// name is either a template parameter identifier or a decimal index into
// TemplateArgs (libace/common/Arguments.cpp's "${1}", "${2}", ...).
var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*|[0-9]+)\}`)

// instantiateTemplates clones body, substituting every "${name}" token
// found inside string leaves and every "$name"-prefixed object key with
// the scalar rendering of templates[name] (or templateArgs[i-1] for a
// purely numeric name), per §4.F step 5.
func instantiateTemplates(body, templates *value.Value, templateArgs []string) (*value.Value, error) {
	args := map[string]string{}
	if templates != nil {
		if templates.Kind() != value.ObjectKind {
			return nil, fmt.Errorf("templates: expected an object")
		}
		for _, k := range templates.Keys() {
			s, ok := templates.Get(k).Scalar()
			if !ok {
				return nil, fmt.Errorf("templates[%s]: only scalar template arguments are supported", k)
			}
			args[k] = s
		}
	}
	for i, a := range templateArgs {
		args[strconv.Itoa(i+1)] = a
	}
	return substitute(body, args)
}

func substitute(v *value.Value, args map[string]string) (*value.Value, error) {
	switch v.Kind() {
	case value.StringKind:
		s, _ := v.String()
		out, err := substituteString(s, args)
		if err != nil {
			return nil, err
		}
		return value.NewString(out), nil
	case value.ArrayKind:
		out := value.NewArray()
		for _, el := range v.Array() {
			sub, err := substitute(el, args)
			if err != nil {
				return nil, err
			}
			out.Push(sub)
		}
		return out, nil
	case value.ObjectKind:
		out := value.NewObject()
		for _, k := range v.Keys() {
			newKey, err := substituteKey(k, args)
			if err != nil {
				return nil, err
			}
			sub, err := substitute(v.Get(k), args)
			if err != nil {
				return nil, err
			}
			out.Put(newKey, sub)
		}
		return out, nil
	default:
		return v, nil
	}
}

func substituteString(s string, args map[string]string) (string, error) {
	var outErr error
	out := placeholderRe.ReplaceAllStringFunc(s, func(tok string) string {
		name := tok[2 : len(tok)-1]
		val, ok := args[name]
		if !ok {
			outErr = fmt.Errorf("template placeholder %q has no value", tok)
			return tok
		}
		return val
	})
	return out, outErr
}

// substituteKey handles "$name" object keys (distinct from the "${name}"
// string-interior form): the whole key is replaced by the argument's
// value verbatim.
func substituteKey(k string, args map[string]string) (string, error) {
	if len(k) < 2 || k[0] != '$' {
		return k, nil
	}
	name := k[1:]
	val, ok := args[name]
	if !ok {
		return k, nil
	}
	return val, nil
}
