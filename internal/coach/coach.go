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

package coach

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"

	"go.aceconf.dev/ace/internal/model"
	"go.aceconf.dev/ace/internal/types"
)

// Print renders m's full field tree to w, recursing into Class/Selector
// includes, in the style of a `tree` listing (§4.H).
func Print(w io.Writer, m *model.Model) {
	fmt.Fprintf(w, "%s (%s)\n", m.Name, m.Version)
	printBody(w, m, Root)
}

func printBody(w io.Writer, m *model.Model, br Branch) {
	for i, bt := range m.Body {
		last := i == len(m.Body)-1
		t := Tee
		if last {
			t = Corner
		}
		line := br.Push(t)
		fmt.Fprintf(w, "%s%s [%s]", line, bt.Name(), bt.Kind())
		if doc := bt.Doc(); doc != "" {
			fmt.Fprintf(w, " — %s", doc)
		}
		fmt.Fprintln(w)

		switch t := bt.(type) {
		case *types.ClassType:
			if sub := m.ResolveInclude(t.ModelName); sub != nil {
				printBody(w, sub, line)
			}
		case *types.SelectorType:
			for _, branchName := range t.Branches {
				if sub := m.ResolveInclude(branchName); sub != nil {
					printBody(w, sub, line)
				}
			}
		}
	}
}

// Explain walks m to the type addressed by dotted path p (§4.H: "walks the
// model to the addressed type and prints its full attribute dump at that
// point"), recursing through Class/Selector includes on each dotted
// component, and writes a pretty-printed dump of the type found.
func Explain(w io.Writer, m *model.Model, p string) error {
	bt, err := find(m, strings.Split(p, "."))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", bt.Path())
	fmt.Fprintf(w, "  kind:     %s\n", bt.Kind())
	fmt.Fprintf(w, "  doc:      %s\n", bt.Doc())
	fmt.Fprintf(w, "  arity:    %d..%d\n", bt.ArityAttr().Lo, bt.ArityAttr().Hi)
	fmt.Fprintf(w, "  deps:     %v\n", bt.Deps())
	fmt.Fprintf(w, "  includes: %v\n", bt.CollectIncludes())
	fmt.Fprintf(w, "  %# v\n", pretty.Formatter(bt))
	return nil
}

func find(m *model.Model, steps []string) (types.BasicType, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("coach: empty path")
	}
	name := steps[0]
	bt := m.Get(name)
	if bt == nil {
		return nil, fmt.Errorf("coach: no field %q in model %q", name, m.Name)
	}
	if len(steps) == 1 {
		return bt, nil
	}
	switch t := bt.(type) {
	case *types.ClassType:
		sub := m.ResolveInclude(t.ModelName)
		if sub == nil {
			return nil, fmt.Errorf("coach: class %q: no such included model", t.ModelName)
		}
		return find(sub, steps[1:])
	case *types.SelectorType:
		for _, branchName := range t.Branches {
			sub := m.ResolveInclude(branchName)
			if sub == nil {
				continue
			}
			if found, err := find(sub, steps[1:]); err == nil {
				return found, nil
			}
		}
		return nil, fmt.Errorf("coach: selector %q: no branch resolves %q", name, steps[1])
	default:
		return nil, fmt.Errorf("coach: %q is a leaf, cannot descend into %q", name, steps[1])
	}
}
