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

package value

import "testing"

func TestObjectBuilderRejectsDuplicateKeys(t *testing.T) {
	b := NewObjectBuilder()
	if err := b.Put("a", NewInt(1)); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := b.Put("a", NewInt(2)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestObjectBuilderPreservesOrder(t *testing.T) {
	b := NewObjectBuilder()
	b.Put("z", NewInt(1))
	b.Put("a", NewInt(2))
	got := b.Value().Keys()
	if len(got) != 2 || got[0] != "z" || got[1] != "a" {
		t.Errorf("Keys() = %v, want [z a]", got)
	}
}
