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

// Package eval reduces an ast.Expr to a bword.Word, consulting an Env for
// binding resolution, string-memory placement and the len() translation-time
// function.
package eval

import (
	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/token"
)

// Env is implemented by the translator. It supplies the pieces of state the
// evaluator needs but does not own: the binding table, the memory segment
// string literals are pushed into, and the string-length registry len()
// consults.
type Env interface {
	ResolveBinding(name token.View) (*bind.Binding, bool)
	PushString(s token.View) bword.Word
	StringLength(addr uint64) (int, bool)
}

// Expr evaluates expr at use-site location loc.
func Expr(env Env, expr ast.Expr, loc token.Location) (bword.Word, error) {
	switch expr.Kind {
	case ast.LitInt:
		return bword.U64(expr.LitIntValue), nil

	case ast.LitFloat:
		return bword.F64(expr.LitFloatValue), nil

	case ast.LitChar:
		return bword.U64(uint64(expr.LitCharValue)), nil

	case ast.LitStr:
		return env.PushString(expr.LitStrValue), nil

	case ast.Funcall:
		return evalFuncall(env, expr, loc)

	case ast.Binding:
		b, ok := env.ResolveBinding(expr.BindingName)
		if !ok {
			return bword.Word{}, diag.Errf(loc, "could find binding `%s`.", expr.BindingName)
		}
		return Binding(env, b, loc)

	case ast.BinaryOp:
		return evalBinaryOp(env, expr, loc)

	default:
		return bword.Word{}, diag.Errf(loc, "basm_expr_eval: unreachable")
	}
}

// Binding evaluates a binding, triggering lazy evaluation and cycle
// detection. The status field is mutated before recursion and restored
// before returning, per spec.md's design notes: this is the entire
// cycle-detection mechanism, and it must not be replaced with a separate
// "visited" set since the binding's own Loc is what the cyclic error reports.
func Binding(env Env, b *bind.Binding, loc token.Location) (bword.Word, error) {
	if b.Status == bind.Evaluating {
		return bword.Word{}, diag.Errf(b.Loc, "cyclic binding definition.")
	}

	if b.Status == bind.Unevaluated {
		b.Status = bind.Evaluating
		value, err := Expr(env, b.Expr, loc)
		if err != nil {
			return bword.Word{}, err
		}
		b.Status = bind.Evaluated
		b.Value = value
	}

	return b.Value, nil
}

func evalBinaryOp(env Env, expr ast.Expr, loc token.Location) (bword.Word, error) {
	left, err := Expr(env, *expr.BinOpLeft, loc)
	if err != nil {
		return bword.Word{}, err
	}
	right, err := Expr(env, *expr.BinOpRight, loc)
	if err != nil {
		return bword.Word{}, err
	}

	switch expr.BinOpKind {
	case ast.Plus:
		// Known limitation (spec.md 9 / original TODO #183): compile-time
		// sum only works correctly for integer operands; a mixed int/float
		// pair is summed as unsigned 64-bit, corrupting the float operand.
		return bword.U64(left.AsU64() + right.AsU64()), nil
	case ast.Gt:
		if left.AsU64() > right.AsU64() {
			return bword.U64(1), nil
		}
		return bword.U64(0), nil
	default:
		return bword.Word{}, diag.Errf(loc, "basm_binary_op_eval: unreachable")
	}
}

func evalFuncall(env Env, expr ast.Expr, loc token.Location) (bword.Word, error) {
	if string(expr.FuncallName) != "len" {
		return bword.Word{}, diag.Errf(loc, "Unknown translation time function `%s`", expr.FuncallName)
	}

	if len(expr.FuncallArgs) != 1 {
		return bword.Word{}, diag.Errf(loc, "len() expects 1 argument but got %d", len(expr.FuncallArgs))
	}

	addr, err := Expr(env, expr.FuncallArgs[0], loc)
	if err != nil {
		return bword.Word{}, err
	}

	length, ok := env.StringLength(addr.AsU64())
	if !ok {
		return bword.Word{}, diag.Errf(loc, "Could not compute the length of string at address %d", addr.AsU64())
	}

	return bword.U64(uint64(length)), nil
}
