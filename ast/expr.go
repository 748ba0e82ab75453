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

// Package ast holds the expression tree the parser builds and the evaluator
// reduces. Expr is a closed tagged variant: a Kind discriminator plus the
// payload fields relevant to that kind, the idiomatic Go replacement for the
// original arena-allocated tagged C union.
package ast

import "github.com/basmlang/basm/token"

// Kind discriminates the variant an Expr holds.
type Kind int

const (
	LitInt Kind = iota
	LitFloat
	LitChar
	LitStr
	Binding
	BinaryOp
	Funcall
)

// BinOpKind discriminates the two supported binary operators.
type BinOpKind int

const (
	Plus BinOpKind = iota
	Gt
)

func (k BinOpKind) String() string {
	if k == Gt {
		return ">"
	}
	return "+"
}

// Expr is a node of the expression tree. Only the fields relevant to Kind are
// meaningful; this mirrors the original C union without requiring an arena,
// since Go values and pointers are already garbage collected.
type Expr struct {
	Kind Kind

	LitIntValue   uint64
	LitFloatValue float64
	LitCharValue  byte
	LitStrValue   token.View

	BindingName token.View

	BinOpKind   BinOpKind
	BinOpLeft   *Expr
	BinOpRight  *Expr

	FuncallName token.View
	FuncallArgs []Expr
}

// Int builds an integer literal expression.
func Int(v uint64) Expr { return Expr{Kind: LitInt, LitIntValue: v} }

// Float builds a float literal expression.
func Float(v float64) Expr { return Expr{Kind: LitFloat, LitFloatValue: v} }

// Char builds a char literal expression.
func Char(v byte) Expr { return Expr{Kind: LitChar, LitCharValue: v} }

// Str builds a string literal expression.
func Str(v token.View) Expr { return Expr{Kind: LitStr, LitStrValue: v} }

// Bind builds an unresolved-identifier expression.
func Bind(name token.View) Expr { return Expr{Kind: Binding, BindingName: name} }

// Binary builds a binary-operator expression node.
func Binary(kind BinOpKind, left, right Expr) Expr {
	return Expr{Kind: BinaryOp, BinOpKind: kind, BinOpLeft: &left, BinOpRight: &right}
}

// Call builds a function-call expression node.
func Call(name token.View, args []Expr) Expr {
	return Expr{Kind: Funcall, FuncallName: name, FuncallArgs: args}
}
