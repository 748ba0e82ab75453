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

// Package bind implements the named-binding table: const/label/native
// records with lazy evaluation and cycle detection.
package bind

import (
	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/token"
)

// Kind discriminates what a binding represents.
type Kind int

const (
	Const Kind = iota
	Label
	Native
)

func (k Kind) String() string {
	switch k {
	case Label:
		return "label"
	case Native:
		return "native"
	default:
		return "const"
	}
}

// Status tracks a binding's evaluation progress. Evaluating is the
// cycle-detection sentinel: the evaluator sets it before recursing into the
// binding's expression and restores it (to Evaluated) before returning, per
// spec.md's design notes -- a separate "visited" set is not used because the
// per-binding Loc is needed for the cyclic-definition error message.
type Status int

const (
	Unevaluated Status = iota
	Evaluating
	Evaluated
)

// Binding is a named, translation-time value or label.
type Binding struct {
	Name   token.View
	Value  bword.Word
	Expr   ast.Expr
	Status Status
	Kind   Kind
	Loc    token.Location
}

// Table is the growable name -> Binding registry. Unlike the original C
// fixed-capacity array, it has no preset bound (REDESIGN FLAGS, spec.md 9).
type Table struct {
	bindings []*Binding
}

// NewTable returns an empty binding table.
func NewTable() *Table {
	return &Table{}
}

// Resolve looks up a binding by name via linear scan.
func (t *Table) Resolve(name token.View) (*Binding, bool) {
	for _, b := range t.bindings {
		if b.Name.Eq(name) {
			return b, true
		}
	}
	return nil, false
}

func (t *Table) checkDuplicate(name token.View, loc token.Location) error {
	if existing, ok := t.Resolve(name); ok {
		return diag.ErrfNote(
			loc, "name `"+string(name)+"` is already bound",
			existing.Loc, "first binding is located here",
		)
	}
	return nil
}

// BindValue inserts an already-evaluated binding.
func (t *Table) BindValue(name token.View, value bword.Word, kind Kind, loc token.Location) error {
	if err := t.checkDuplicate(name, loc); err != nil {
		return err
	}
	t.bindings = append(t.bindings, &Binding{
		Name:   name,
		Value:  value,
		Status: Evaluated,
		Kind:   kind,
		Loc:    loc,
	})
	return nil
}

// BindExpr inserts an unevaluated binding whose value is computed on demand.
func (t *Table) BindExpr(name token.View, expr ast.Expr, kind Kind, loc token.Location) error {
	if err := t.checkDuplicate(name, loc); err != nil {
		return err
	}
	t.bindings = append(t.bindings, &Binding{
		Name:   name,
		Expr:   expr,
		Status: Unevaluated,
		Kind:   kind,
		Loc:    loc,
	})
	return nil
}

// Len reports how many bindings are registered.
func (t *Table) Len() int { return len(t.bindings) }
