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

package acelog

import "testing"

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"Error":   LevelError,
		"warning": LevelWarning,
		"INFO":    LevelInfo,
		"debug":   LevelDebug,
		"extra":   LevelExtra,
		"all":     LevelAll,
		"":        LevelNone,
		"bogus":   LevelNone,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewDiscardsWhenLevelNone(t *testing.T) {
	t.Setenv("ACE_LOG_LEVEL", "")
	l := New()
	if l == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewHonorsLevel(t *testing.T) {
	t.Setenv("ACE_LOG_LEVEL", "Info")
	t.Setenv("ACE_LOG_STREAM", "STDOUT")
	l := New()
	if l == nil {
		t.Fatal("New() returned nil")
	}
}
