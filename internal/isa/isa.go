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

// Package isa defines the mnemonic-to-instruction-kind mapping the
// translator consults. Arity (0 or 1 operand) is part of the externally
// defined instruction set surface described in spec.md 6; this package ships
// a default table grounded in the minimal stack-machine opcode set the
// original C VM header (not itself part of the translation core) exposed.
package isa

// Kind identifies an instruction type.
type Kind uint8

const (
	Nop Kind = iota
	Push
	Drop
	Dup
	Swap
	Jmp
	JmpIfNot
	Call
	Ret
	Native
	Halt
	Plus
	Minus
	Mult
	Div
	Eq
	Gt
	Lt
	Andb
	Orb
	Notb
	Read8
	Read16
	Read32
	Read64
	Write8
	Write16
	Write32
	Write64
)

var names = [...]string{
	Nop:      "nop",
	Push:     "push",
	Drop:     "drop",
	Dup:      "dup",
	Swap:     "swap",
	Jmp:      "jmp",
	JmpIfNot: "jmp_if_not",
	Call:     "call",
	Ret:      "ret",
	Native:   "native",
	Halt:     "halt",
	Plus:     "plus",
	Minus:    "minus",
	Mult:     "mult",
	Div:      "div",
	Eq:       "eq",
	Gt:       "gt",
	Lt:       "lt",
	Andb:     "andb",
	Orb:      "orb",
	Notb:     "notb",
	Read8:    "read8",
	Read16:   "read16",
	Read32:   "read32",
	Read64:   "read64",
	Write8:   "write8",
	Write16:  "write16",
	Write32:  "write32",
	Write64:  "write64",
}

// operandKinds is the subset of mnemonics that carry a single operand slot.
var operandKinds = map[Kind]bool{
	Push:     true,
	Jmp:      true,
	JmpIfNot: true,
	Call:     true,
	Native:   true,
}

// Table maps mnemonics to instruction kinds. A Table built via Default is
// ready to use; hosts may register additional mnemonics (e.g. a
// config-provided native-function alias table) with Register.
type Table struct {
	byName map[string]Kind
}

// Default returns the table covering the built-in mnemonic set.
func Default() *Table {
	t := &Table{byName: make(map[string]Kind, len(names))}
	for k, n := range names {
		if n != "" {
			t.byName[n] = Kind(k)
		}
	}
	return t
}

// Register adds or overrides a mnemonic mapping.
func (t *Table) Register(name string, kind Kind) {
	t.byName[name] = kind
}

// Lookup resolves a mnemonic to its Kind.
func (t *Table) Lookup(name string) (Kind, bool) {
	k, ok := t.byName[name]
	return k, ok
}

// HasOperand reports whether the instruction expects a single operand.
func (k Kind) HasOperand() bool { return operandKinds[k] }

// String renders the canonical mnemonic.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "nop"
}
