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
	"os"
	"path/filepath"

	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/attribute"
	"go.aceconf.dev/ace/internal/value"
)

// FileMode is the "mode" attribute governing a File leaf's filesystem
// format check (§6: "mode for File: r|rw|new|any").
type FileMode string

const (
	ModeRead FileMode = "r"
	ModeRW   FileMode = "rw"
	ModeNew  FileMode = "new"
	ModeAny  FileMode = "any"
)

func parseFileMode(s string) (FileMode, bool) {
	switch FileMode(s) {
	case ModeRead, ModeRW, ModeNew, ModeAny:
		return FileMode(s), true
	}
	return "", false
}

// FileType is a string FormatChecker<string> type whose format check is a
// filesystem stat gated by mode, mirroring FileFormatChecker::checkFormat
// in the source, which stats the path and compares against the owning
// FileModeAttribute.
type FileType struct {
	Base
	eitherAttr *attribute.Either
	mode       FileMode
}

func NewFile(name string) *FileType {
	return &FileType{Base: NewBase(File, name), eitherAttr: attribute.NewEither().(*attribute.Either), mode: ModeAny}
}

func (t *FileType) CollectIncludes() []string { return nil }

func (t *FileType) LoadModel(schema *value.Value) errors.List {
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
	if m := schema.Get("mode"); m != nil {
		s, ok := m.String()
		if !ok {
			list.Addf(m.Path(), m.Pos(), "mode: expected a string")
		} else if mode, ok := parseFileMode(s); !ok {
			list.Addf(m.Path(), m.Pos(), "mode: %q is not one of r, rw, new, any", s)
		} else {
			t.mode = mode
		}
	}
	return list
}

func (t *FileType) FlattenModel(parent BasicType) errors.List {
	var p *Base
	if pt, ok := parent.(*FileType); ok {
		p = &pt.Base
		t.eitherAttr.Merge(pt.eitherAttr)
		if t.mode == ModeAny && pt.mode != "" {
			t.mode = pt.mode
		}
	}
	return t.FlattenCommon(p)
}

func (t *FileType) ValidateModel() errors.List {
	var list errors.List
	if def := t.Default(); def != nil {
		if _, ok := def.String(); !ok {
			list.Addf(t.Path(), def.Pos(), "default value must be a string")
		}
	}
	return list
}

// checkFile mirrors FileFormatChecker::checkFormat: the mode attribute
// governs whether the path must already exist (r/rw), must not yet exist
// while its parent directory does (new), or is unconstrained (any).
func checkFile(path string, mode FileMode) error {
	switch mode {
	case ModeRead:
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("file does not exist: %v", err)
		}
		if info.IsDir() {
			return fmt.Errorf("%q is a directory, not a file", path)
		}
	case ModeRW:
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("file does not exist: %v", err)
		}
		if info.IsDir() {
			return fmt.Errorf("%q is a directory, not a file", path)
		}
		if info.Mode().Perm()&0o200 == 0 {
			return fmt.Errorf("%q is not writable", path)
		}
	case ModeNew:
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%q already exists", path)
		}
		dir := filepath.Dir(path)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("parent directory %q does not exist", dir)
		}
	case ModeAny:
		// no filesystem check
	}
	return nil
}

func (t *FileType) CheckInstance(root, v *value.Value) errors.List {
	var list errors.List
	if v == nil {
		return list
	}
	if v.Kind() != value.StringKind {
		list.Addf(v.Path(), v.Pos(), "expected a string, got %s", v.Kind())
		return list
	}
	s, _ := v.String()
	if err := checkFile(s, t.mode); err != nil {
		list.Addf(v.Path(), v.Pos(), "%v", err)
	}
	list = append(list, t.eitherAttr.Validate(root, v)...)
	return list
}

func (t *FileType) ExpandInstance(root, v *value.Value) (*value.Value, errors.List) {
	return expandLeaf(t, root, v)
}

func (t *FileType) FlattenInstance(root, v *value.Value) errors.List { return nil }
func (t *FileType) ResolveInstance(root, v *value.Value) errors.List { return nil }

func (t *FileType) Clone() BasicType {
	c := *t
	e := *t.eitherAttr
	c.eitherAttr = &e
	return &c
}
