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

// Package token holds source positions attached to value tree nodes by
// format adapters, so that schema and instance diagnostics can point at the
// originating document.
package token

import "fmt"

// NoPos is the zero value for Pos; it means "no position available".
var NoPos = Pos{}

// Pos describes a location within a source document: the file it came
// from, and the 1-based line/column within that file.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

// IsValid reports whether the position carries a filename.
func (p Pos) IsValid() bool {
	return p.Filename != ""
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	s := p.Filename
	if p.Line > 0 {
		s += fmt.Sprintf(":%d", p.Line)
		if p.Column > 0 {
			s += fmt.Sprintf(":%d", p.Column)
		}
	}
	return s
}
