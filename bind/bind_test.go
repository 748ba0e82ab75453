// This file is part of basm - https://github.com/basmlang/basm
//
// Copyright 2026 The basm Authors
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

package bind_test

import (
	"strings"
	"testing"

	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/token"
)

var loc = token.Location{Path: "test.basm", Line: 1}

func TestTable_resolveUnknown(t *testing.T) {
	tbl := bind.NewTable()
	if _, ok := tbl.Resolve("x"); ok {
		t.Fatal("expected x to be unresolved in an empty table")
	}
}

func TestTable_bindValueAndResolve(t *testing.T) {
	tbl := bind.NewTable()
	if err := tbl.BindValue("x", bword.U64(42), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := tbl.Resolve("x")
	if !ok {
		t.Fatal("expected x to resolve")
	}
	if b.Status != bind.Evaluated {
		t.Errorf("got status %v, want Evaluated", b.Status)
	}
	if b.Value.AsU64() != 42 {
		t.Errorf("got value %d, want 42", b.Value.AsU64())
	}
}

func TestTable_duplicateBindingErrors(t *testing.T) {
	tbl := bind.NewTable()
	if err := tbl.BindValue("x", bword.U64(1), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondLoc := token.Location{Path: "test.basm", Line: 5}
	err := tbl.BindValue("x", bword.U64(2), bind.Const, secondLoc)
	if err == nil {
		t.Fatal("expected a duplicate-binding error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "already bound") {
		t.Errorf("got %q, want it to mention the binding is already bound", msg)
	}
	if !strings.Contains(msg, "test.basm:1:") {
		t.Errorf("got %q, want a NOTE pointing back at the first binding's location", msg)
	}
}

// Pointers returned by Resolve must stay valid across further inserts, since
// evaluation holds on to a *Binding across recursive calls (spec.md 9).
func TestTable_resolvedPointerSurvivesFurtherInserts(t *testing.T) {
	tbl := bind.NewTable()
	if err := tbl.BindValue("a", bword.U64(1), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := tbl.Resolve("a")

	for i := 0; i < 256; i++ {
		name := token.View("n" + string(rune('a'+(i%26))) + string(rune(i)))
		_ = tbl.BindValue(name, bword.U64(uint64(i)), bind.Const, loc)
	}

	if a.Value.AsU64() != 1 {
		t.Errorf("got %d, want the original pointer's value to still read 1", a.Value.AsU64())
	}
}
