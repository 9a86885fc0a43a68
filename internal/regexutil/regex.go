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

// Package regexutil implements the full-match and back-reference expansion
// primitives hooks are built from (§4.C, §4.G). It is ported from the
// original implementation's expansion_count/expand_string pair: '\\' is the
// only escape, digits 1..9 following it are back-references, and the set
// of referenced digits must be dense (1..N with no gaps).
package regexutil

import (
	"fmt"
	"regexp"
	"strings"
)

// Match reports whether s fully matches pattern pat.
func Match(s, pat string) (bool, error) {
	re, err := regexp.Compile("^(?:" + pat + ")$")
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// backrefCount validates that template's '\k' references are dense 1..N
// and returns N. '\0' and non-dense references (e.g. using \1 and \3 but
// not \2) are rejected, matching the original implementation.
func backrefCount(template string) (int, error) {
	seen := map[int]bool{}
	max := 0
	esc := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '\\' {
			esc = !esc
			continue
		}
		if esc {
			if c >= '0' && c <= '9' {
				d := int(c - '0')
				if d == 0 {
					return 0, fmt.Errorf("regexutil: back-reference \\0 is not allowed")
				}
				seen[d] = true
				if d > max {
					max = d
				}
			}
			esc = false
		}
	}
	if esc {
		return 0, fmt.Errorf("regexutil: dangling escape at end of template")
	}
	if len(seen) != max {
		return 0, fmt.Errorf("regexutil: back-references must be dense 1..N")
	}
	return max, nil
}

// expandTemplate substitutes \1..\N in template with groups (1-indexed);
// "\\" is the escape for a literal backslash.
func expandTemplate(template string, groups []string) string {
	var b strings.Builder
	esc := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '\\' && !esc:
			esc = true
		case esc && c >= '1' && c <= '9':
			b.WriteString(groups[int(c-'1')])
			esc = false
		case esc:
			b.WriteByte(c)
			esc = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Expand runs a full-match of s against pat, requiring at least N capturing
// groups where N is the number of dense back-references used in template,
// and substitutes them into template. It fails if back-references are
// non-dense, the match fails, or pat has fewer than N capture groups.
func Expand(s, pat, template string) (string, error) {
	n, err := backrefCount(template)
	if err != nil {
		return "", err
	}
	re, err := regexp.Compile("^(?:" + pat + ")$")
	if err != nil {
		return "", err
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("regexutil: %q does not match %q", s, pat)
	}
	groups := m[1:]
	if len(groups) < n {
		return "", fmt.Errorf("regexutil: pattern %q has %d groups, template needs %d", pat, len(groups), n)
	}
	return expandTemplate(template, groups), nil
}
