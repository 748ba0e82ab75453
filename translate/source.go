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

package translate

import (
	"github.com/pkg/errors"

	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/eval"
	"github.com/basmlang/basm/parser"
	"github.com/basmlang/basm/token"
)

const commentSymbol = ';'

// TranslateSource reads path and walks it line by line, emitting
// instructions and memory and collecting deferred operands, asserts and the
// entry point. It is re-entrant: a %include line recurses into
// TranslateSource for the included file before the current line loop
// resumes, so inclusion is textual and strictly depth-first (spec.md 3).
//
// Pass two -- resolving deferred operands, checking asserts and resolving
// the entry point -- runs unconditionally at the end of every call,
// including nested %include calls, mirroring the original translator's
// behavior exactly: a nested call re-walks whatever has been deferred so
// far. Binding resolution is memoized (eval.Binding), so repeating this at
// an outer level is a harmless no-op for deferred operands and the entry
// point; a deferred %assert whose expression itself contains a fresh string
// literal can be re-evaluated more than once, re-appending that literal to
// memory -- an inherited quirk, not something this port introduces.
func (t *Translator) TranslateSource(path string) error {
	source, err := t.arena.SlurpFile(path)
	if err != nil {
		if t.IncludeLevel > 0 {
			return diag.Errf(t.IncludeLocation, "could not read file `%s`: %s", path, err)
		}
		return errors.Wrapf(err, "could not read file `%s`", path)
	}

	loc := token.Location{Path: path, Line: 0}
	src := token.View(source)

	for !src.Empty() {
		line := src.ChopByDelim('\n')
		line.Trim()

		code := line.ChopByDelim(commentSymbol)
		code.Trim()
		line = code

		loc.Line++

		if line.Empty() {
			continue
		}

		if err := t.translateLine(&line, loc); err != nil {
			return err
		}
	}

	if err := t.resolveDeferredOperands(); err != nil {
		return err
	}
	if err := t.evalDeferredAsserts(); err != nil {
		return err
	}
	if err := t.resolveEntry(); err != nil {
		return err
	}

	return nil
}

func (t *Translator) translateLine(line *token.View, loc token.Location) error {
	first := line.ChopByDelim(' ')
	first.Trim()

	if !first.Empty() && first[0] == '%' {
		return t.translateDirective(string(first[1:]), line, loc)
	}

	if !first.Empty() && first[len(first)-1] == ':' {
		labelName := first[:len(first)-1]
		if err := t.Bindings.BindValue(labelName, bword.U64(uint64(len(t.Program))), bind.Label, loc); err != nil {
			return err
		}
		first = line.ChopByDelim(' ')
		first.Trim()
	}

	if first.Empty() {
		return nil
	}

	return t.translateInstruction(string(first), line, loc)
}

func (t *Translator) translateInstruction(mnemonic string, line *token.View, loc token.Location) error {
	kind, ok := t.Insts.Lookup(mnemonic)
	if !ok {
		return diag.Errf(loc, "unknown instruction `%s`", mnemonic)
	}

	inst := Instruction{Type: kind}

	if kind.HasOperand() {
		line.Trim()
		if line.Empty() {
			return diag.Errf(loc, "instruction `%s` requires an operand", mnemonic)
		}
		expr, err := parser.ExprFromView(*line, loc)
		if err != nil {
			return err
		}
		if expr.Kind == ast.Binding {
			t.DeferredOperands = append(t.DeferredOperands, DeferredOperand{
				ProgramAddr: len(t.Program),
				Expr:        expr,
				Loc:         loc,
			})
		} else {
			w, err := eval.Expr(t, expr, loc)
			if err != nil {
				return err
			}
			inst.Operand = w
		}
	}

	t.Program = append(t.Program, inst)
	return nil
}
