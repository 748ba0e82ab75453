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

// Package translate implements the two-pass translator: it walks source
// lines, emitting instructions and strings while collecting forward
// references, then resolves everything that was deferred.
package translate

import (
	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/config"
	"github.com/basmlang/basm/internal/bio"
	"github.com/basmlang/basm/internal/isa"
	"github.com/basmlang/basm/token"
)

// Instruction is one program-array record: its kind and resolved operand.
type Instruction struct {
	Type    isa.Kind
	Operand bword.Word
}

// DeferredOperand is a forward reference from an instruction's operand slot
// to a name that may not exist yet. Its Expr is always of kind ast.Binding
// (invariant 2, spec.md 3).
type DeferredOperand struct {
	ProgramAddr int
	Expr        ast.Expr
	Loc         token.Location
}

// DeferredAssert is an %assert expression evaluated after pass one.
type DeferredAssert struct {
	Expr ast.Expr
	Loc  token.Location
}

// StringLength records the memory address and byte length of every string
// literal pushed to memory, so the translation-time len() function can
// resolve it.
type StringLength struct {
	Addr   uint64
	Length int
}

// Translator owns every piece of state a translation unit accumulates. It is
// re-entrant across %include boundaries: IncludeLevel/IncludeLocation track
// the recursion, while Program, Memory, Bindings and the deferred lists are
// shared across the whole include tree.
type Translator struct {
	Config *config.Config
	Insts  *isa.Table
	arena  *bio.Arena

	Program []Instruction

	Memory         []byte
	MemoryCapacity int

	Bindings *bind.Table

	DeferredOperands []DeferredOperand
	DeferredAsserts  []DeferredAssert
	StringLengths    []StringLength

	Entry             uint64
	HasEntry          bool
	EntryLocation     token.Location
	DeferredEntryName token.View

	IncludeLevel    int
	IncludeLocation token.Location
}

// New returns a Translator ready to run TranslateSource. A nil cfg falls
// back to config.Default.
func New(cfg *config.Config) *Translator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Translator{
		Config:   cfg,
		Insts:    isa.Default(),
		arena:    bio.NewArena(),
		Bindings: bind.NewTable(),
	}
}

// ResolveBinding implements eval.Env.
func (t *Translator) ResolveBinding(name token.View) (*bind.Binding, bool) {
	return t.Bindings.Resolve(name)
}

// PushString implements eval.Env: it copies s into an arena-allocated
// scratch buffer, appends that to the memory segment, and registers a
// StringLength record so len() can resolve it later.
func (t *Translator) PushString(s token.View) bword.Word {
	addr := uint64(len(t.Memory))
	scratch := t.arena.Alloc(len(s))
	copy(scratch, s)
	t.Memory = append(t.Memory, scratch...)
	if len(t.Memory) > t.MemoryCapacity {
		t.MemoryCapacity = len(t.Memory)
	}
	t.StringLengths = append(t.StringLengths, StringLength{Addr: addr, Length: len(s)})
	return bword.U64(addr)
}

// Close releases the arena's scratch buffers. Call it once the translation
// unit's Program and Memory have been consumed (written to an image, for
// instance); Memory itself holds independent copies and stays valid.
func (t *Translator) Close() {
	t.arena.Release()
}

// StringLength implements eval.Env.
func (t *Translator) StringLength(addr uint64) (int, bool) {
	for _, sl := range t.StringLengths {
		if sl.Addr == addr {
			return sl.Length, true
		}
	}
	return 0, false
}
