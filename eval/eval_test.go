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

package eval_test

import (
	"strings"
	"testing"

	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/eval"
	"github.com/basmlang/basm/token"
)

var loc = token.Location{Path: "test.basm", Line: 1}

// fakeEnv is a minimal eval.Env backed by a bind.Table, standing in for
// translate.Translator in package-local tests.
type fakeEnv struct {
	bindings *bind.Table
	memory   []byte
	lengths  map[uint64]int
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{bindings: bind.NewTable(), lengths: map[uint64]int{}}
}

func (e *fakeEnv) ResolveBinding(name token.View) (*bind.Binding, bool) {
	return e.bindings.Resolve(name)
}

func (e *fakeEnv) PushString(s token.View) bword.Word {
	addr := uint64(len(e.memory))
	e.memory = append(e.memory, []byte(string(s))...)
	e.lengths[addr] = len(s)
	return bword.U64(addr)
}

func (e *fakeEnv) StringLength(addr uint64) (int, bool) {
	n, ok := e.lengths[addr]
	return n, ok
}

func TestExpr_literals(t *testing.T) {
	env := newFakeEnv()

	w, err := eval.Expr(env, ast.Int(42), loc)
	if err != nil || w.AsU64() != 42 {
		t.Errorf("LitInt: got (%v, %v), want (42, nil)", w.AsU64(), err)
	}

	w, err = eval.Expr(env, ast.Float(3.14), loc)
	if err != nil || w.AsF64() != 3.14 {
		t.Errorf("LitFloat: got (%v, %v), want (3.14, nil)", w.AsF64(), err)
	}

	w, err = eval.Expr(env, ast.Char('a'), loc)
	if err != nil || w.AsU64() != 'a' {
		t.Errorf("LitChar: got (%v, %v), want ('a', nil)", w.AsU64(), err)
	}
}

func TestExpr_stringAndLen(t *testing.T) {
	env := newFakeEnv()

	addr, err := eval.Expr(env, ast.Str("hi"), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lenExpr := ast.Call("len", []ast.Expr{ast.Int(addr.AsU64())})
	n, err := eval.Expr(env, lenExpr, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.AsU64() != 2 {
		t.Errorf("got len %d, want 2", n.AsU64())
	}
}

func TestExpr_lenOfUnknownAddressErrors(t *testing.T) {
	env := newFakeEnv()
	lenExpr := ast.Call("len", []ast.Expr{ast.Int(999)})
	if _, err := eval.Expr(env, lenExpr, loc); err == nil {
		t.Fatal("expected an error for an address with no string-length record")
	}
}

func TestExpr_unknownFunctionErrors(t *testing.T) {
	env := newFakeEnv()
	if _, err := eval.Expr(env, ast.Call("double", []ast.Expr{ast.Int(1)}), loc); err == nil {
		t.Fatal("expected an error for an unknown translation-time function")
	}
}

func TestExpr_lenWrongArityErrors(t *testing.T) {
	env := newFakeEnv()
	if _, err := eval.Expr(env, ast.Call("len", nil), loc); err == nil {
		t.Fatal("expected a wrong-arity error")
	}
}

func TestExpr_binaryOps(t *testing.T) {
	env := newFakeEnv()

	sum, err := eval.Expr(env, ast.Binary(ast.Plus, ast.Int(40), ast.Int(2)), loc)
	if err != nil || sum.AsU64() != 42 {
		t.Errorf("Plus: got (%d, %v), want (42, nil)", sum.AsU64(), err)
	}

	gt, err := eval.Expr(env, ast.Binary(ast.Gt, ast.Int(2), ast.Int(1)), loc)
	if err != nil || gt.AsU64() != 1 {
		t.Errorf("Gt: got (%d, %v), want (1, nil)", gt.AsU64(), err)
	}

	gt, err = eval.Expr(env, ast.Binary(ast.Gt, ast.Int(1), ast.Int(2)), loc)
	if err != nil || gt.AsU64() != 0 {
		t.Errorf("Gt: got (%d, %v), want (0, nil)", gt.AsU64(), err)
	}
}

func TestExpr_unresolvedBindingErrors(t *testing.T) {
	env := newFakeEnv()
	if _, err := eval.Expr(env, ast.Bind("missing"), loc); err == nil {
		t.Fatal("expected an error for an unresolved binding")
	}
}

// This is testable property 3 from spec.md 8: a cyclic pair of const
// bindings fails with "cyclic binding". This test evaluates a first.
func TestBinding_cycleDetection(t *testing.T) {
	env := newFakeEnv()
	if err := env.bindings.BindExpr("a", ast.Bind("b"), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.bindings.BindExpr("b", ast.Bind("a"), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := env.bindings.Resolve("a")
	_, err := eval.Binding(env, a, loc)
	if err == nil {
		t.Fatal("expected a cyclic-binding error")
	}
	if !strings.Contains(err.Error(), "cyclic binding") {
		t.Errorf("got %q, want it to mention a cyclic binding", err.Error())
	}
}

func TestBinding_memoizesAfterFirstEvaluation(t *testing.T) {
	env := newFakeEnv()
	if err := env.bindings.BindExpr("a", ast.Int(7), bind.Const, loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := env.bindings.Resolve("a")

	first, err := eval.Binding(env, a, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != bind.Evaluated {
		t.Fatalf("got status %v after first evaluation, want Evaluated", a.Status)
	}

	second, err := eval.Binding(env, a, loc)
	if err != nil || second.AsU64() != first.AsU64() {
		t.Errorf("second evaluation: got (%d, %v), want (%d, nil)", second.AsU64(), err, first.AsU64())
	}
}
