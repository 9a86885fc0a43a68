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

// Package errors defines the shared diagnostic type used across the model
// and instance engines. Every validation stage (§4.F, §4.G of the schema)
// accumulates into a [List] instead of short-circuiting, so a single run
// surfaces every violation rather than just the first.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.aceconf.dev/ace/token"
)

// Error is the common diagnostic type produced by the model and instance
// engines. Path identifies the value tree location the diagnostic concerns;
// it may be empty for errors that are not tied to a location (e.g. a
// missing include file).
type Error interface {
	error
	Position() token.Pos
	Path() string
	Msg() (format string, args []any)
}

// New wraps the stdlib errors.New; it does not produce an [Error].
func New(msg string) error { return errors.New(msg) }

// Is and As forward to the stdlib so callers need only import this package.
func Is(err, target error) bool       { return errors.Is(err, target) }
func As(err error, target any) bool   { return errors.As(err, target) }
func Unwrap(err error) error          { return errors.Unwrap(err) }

// pathError is the concrete [Error] implementation produced by Newf.
type pathError struct {
	pos    token.Pos
	path   string
	format string
	args   []any
}

func Newf(path string, pos token.Pos, format string, args ...any) Error {
	return &pathError{pos: pos, path: path, format: format, args: args}
}

func (e *pathError) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	switch {
	case e.path != "" && e.pos.IsValid():
		return fmt.Sprintf("%s: %s: %s", e.pos, e.path, msg)
	case e.path != "":
		return fmt.Sprintf("%s: %s", e.path, msg)
	case e.pos.IsValid():
		return fmt.Sprintf("%s: %s", e.pos, msg)
	default:
		return msg
	}
}

func (e *pathError) Position() token.Pos        { return e.pos }
func (e *pathError) Path() string                { return e.path }
func (e *pathError) Msg() (string, []any)        { return e.format, e.args }

// List accumulates diagnostics across a validation stage. It implements
// error so that a List with no entries can be returned as a nil-equivalent
// (via Err) and a non-empty List can be returned and printed as a whole.
type List []Error

// Add appends a diagnostic.
func (l *List) Add(err Error) {
	*l = append(*l, err)
}

// Addf is a convenience wrapper around Newf+Add.
func (l *List) Addf(path string, pos token.Pos, format string, args ...any) {
	l.Add(Newf(path, pos, format, args...))
}

// Ok reports whether no diagnostics were collected.
func (l List) Ok() bool { return len(l) == 0 }

// Err returns nil if the list is empty, else the list itself as an error.
func (l List) Err() error {
	if l.Ok() {
		return nil
	}
	return l
}

// Sort orders diagnostics by path, then by position, for stable output.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].Path() != l[j].Path() {
			return l[i].Path() < l[j].Path()
		}
		return l[i].Position().String() < l[j].Position().String()
	})
}

func (l List) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Print writes every diagnostic in the list to w, one per line.
func Print(w io.Writer, l List) {
	l.Sort()
	for _, e := range l {
		fmt.Fprintln(w, e.Error())
	}
}

// Paths returns the distinct, sorted set of paths referenced by l.
func Paths(l List) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range l {
		p := e.Path()
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
