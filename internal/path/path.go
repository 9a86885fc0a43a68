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

// Package path implements the dotted/indexed path grammar (§4.B) used for
// diagnostics, dependency triggers, and hook targeting:
//
//	Path    := ('$' | '.') Step*
//	Step    := '.' Name | '[' Index ']' | '.*'
//	Name    := ident
//	Index   := digits | '*'
//
// A Path is a pure value: parsing, printing and comparing paths depends
// only on strings, never on a value tree (§4.B: "The path module is pure
// and depends only on strings").
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchor identifies where a Path is rooted.
type Anchor int

const (
	// Global anchors at the document root ('$').
	Global Anchor = iota
	// Local anchors at the "current" schema scope ('.' with no '$').
	Local
)

// ItemKind enumerates the kinds of Step a Path can hold.
type ItemKind int

const (
	Named ItemKind = iota
	Indexed
	Any
)

// Item is one step of a Path: either a named key, a numeric index, or the
// wildcard '*'.
type Item struct {
	Kind  ItemKind
	Name  string
	Index int
}

func (it Item) String() string {
	switch it.Kind {
	case Named:
		return "." + it.Name
	case Indexed:
		return "[" + strconv.Itoa(it.Index) + "]"
	case Any:
		return ".*"
	default:
		return ""
	}
}

func (it Item) equal(other Item) bool {
	if it.Kind != other.Kind {
		return false
	}
	switch it.Kind {
	case Named:
		return it.Name == other.Name
	case Indexed:
		return it.Index == other.Index
	default:
		return true
	}
}

// Path is an anchor plus an ordered sequence of Items.
type Path struct {
	Anchor Anchor
	Items  []Item
}

// Parse parses s per the grammar above. An empty leading component after
// the anchor is only valid as '.*' or '[digits]' or '[*]'; bare '.' (Local
// with no steps) and bare '$' (Global with no steps) are both valid and
// denote "this scope" / "the document root".
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("path: empty expression")
	}
	var p Path
	rest := s
	switch rest[0] {
	case '$':
		p.Anchor = Global
		rest = rest[1:]
	case '.':
		p.Anchor = Local
		// leading '.' consumed per-step below
	default:
		return Path{}, fmt.Errorf("path: %q must start with '$' or '.'", s)
	}
	for len(rest) > 0 {
		switch {
		case rest[0] == '.':
			rest = rest[1:]
			if rest == "" {
				if p.Anchor == Local && len(p.Items) == 0 {
					// The lone '.' anchor with no following steps: the
					// Local scope itself.
					break
				}
				return Path{}, fmt.Errorf("path: %q: trailing '.'", s)
			}
			if strings.HasPrefix(rest, "*") {
				p.Items = append(p.Items, Item{Kind: Any})
				rest = rest[1:]
				continue
			}
			name, n := scanIdent(rest)
			if n == 0 {
				return Path{}, fmt.Errorf("path: %q: expected identifier after '.'", s)
			}
			p.Items = append(p.Items, Item{Kind: Named, Name: name})
			rest = rest[n:]
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return Path{}, fmt.Errorf("path: %q: unterminated '['", s)
			}
			idx := rest[1:end]
			if idx == "*" {
				p.Items = append(p.Items, Item{Kind: Any})
			} else {
				n, err := strconv.Atoi(idx)
				if err != nil {
					return Path{}, fmt.Errorf("path: %q: bad index %q", s, idx)
				}
				p.Items = append(p.Items, Item{Kind: Indexed, Index: n})
			}
			rest = rest[end+1:]
		default:
			return Path{}, fmt.Errorf("path: %q: unexpected %q", s, rest[0])
		}
	}
	return p, nil
}

// MustParse is Parse but panics on error; for constants.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func scanIdent(s string) (string, int) {
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '[' {
		i++
	}
	return s[:i], i
}

// String renders p back to its textual form; Parse(p.String()) == p.
func (p Path) String() string {
	var b strings.Builder
	switch p.Anchor {
	case Global:
		b.WriteByte('$')
	default:
		// A leading wildcard's own String() already supplies the
		// separator dot; writing one here too would double it.
		if len(p.Items) == 0 || p.Items[0].Kind != Any {
			b.WriteByte('.')
		}
	}
	for i, it := range p.Items {
		if it.Kind == Named && i == 0 && p.Anchor == Local {
			// the leading Local '.' already serves as this item's dot.
			b.WriteString(it.Name)
			continue
		}
		b.WriteString(it.String())
	}
	return b.String()
}

// Equal reports structural equality between p and other.
func (p Path) Equal(other Path) bool {
	if p.Anchor != other.Anchor || len(p.Items) != len(other.Items) {
		return false
	}
	for i := range p.Items {
		if !p.Items[i].equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// Prefix returns the longest common prefix of a and b, as a Path anchored
// like a (the caller is expected to only compare paths with the same
// anchor).
func Prefix(a, b Path) Path {
	out := Path{Anchor: a.Anchor}
	n := len(a.Items)
	if len(b.Items) < n {
		n = len(b.Items)
	}
	for i := 0; i < n; i++ {
		if !a.Items[i].equal(b.Items[i]) {
			break
		}
		out.Items = append(out.Items, a.Items[i])
	}
	return out
}

// Append returns a new Path with item appended; p is not mutated.
func (p Path) Append(it Item) Path {
	out := Path{Anchor: p.Anchor, Items: make([]Item, len(p.Items)+1)}
	copy(out.Items, p.Items)
	out.Items[len(p.Items)] = it
	return out
}

// Named2 builds a Named Item, for convenience at call sites.
func Named2(name string) Item { return Item{Kind: Named, Name: name} }

// Indexed2 builds an Indexed Item, for convenience at call sites.
func Indexed2(i int) Item { return Item{Kind: Indexed, Index: i} }
