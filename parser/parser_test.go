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

package parser_test

import (
	"testing"

	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/parser"
	"github.com/basmlang/basm/token"
)

var loc = token.Location{Path: "test.basm", Line: 1}

func TestExprFromView_rightAssociativeSum(t *testing.T) {
	expr, err := parser.ExprFromView(token.View("1+2+3"), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Kind != ast.BinaryOp || expr.BinOpKind != ast.Plus {
		t.Fatalf("got %+v, want a top-level Plus node", expr)
	}
	if expr.BinOpLeft.Kind != ast.LitInt || expr.BinOpLeft.LitIntValue != 1 {
		t.Errorf("left operand: got %+v, want LitInt(1)", expr.BinOpLeft)
	}
	right := expr.BinOpRight
	if right.Kind != ast.BinaryOp || right.BinOpKind != ast.Plus {
		t.Fatalf("right operand: got %+v, want a nested Plus node (2 + 3)", right)
	}
	if right.BinOpLeft.LitIntValue != 2 || right.BinOpRight.LitIntValue != 3 {
		t.Errorf("nested operands: got %+v / %+v, want 2 / 3", right.BinOpLeft, right.BinOpRight)
	}
}

func TestExprFromView_numberLiterals(t *testing.T) {
	cases := []struct {
		src      string
		wantKind ast.Kind
		wantU64  uint64
		wantF64  float64
	}{
		{"0xFF", ast.LitInt, 255, 0},
		{"-1", ast.LitInt, 0xFFFFFFFFFFFFFFFF, 0},
		{"3.14", ast.LitFloat, 0, 3.14},
	}
	for _, c := range cases {
		expr, err := parser.ExprFromView(token.View(c.src), loc)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.src, err)
		}
		if expr.Kind != c.wantKind {
			t.Fatalf("%s: got kind %d, want %d", c.src, expr.Kind, c.wantKind)
		}
		if c.wantKind == ast.LitInt && expr.LitIntValue != c.wantU64 {
			t.Errorf("%s: got %d, want %d", c.src, expr.LitIntValue, c.wantU64)
		}
		if c.wantKind == ast.LitFloat && expr.LitFloatValue != c.wantF64 {
			t.Errorf("%s: got %v, want %v", c.src, expr.LitFloatValue, c.wantF64)
		}
	}
}

func TestExprFromView_funcall(t *testing.T) {
	expr, err := parser.ExprFromView(token.View(`len(s)`), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Kind != ast.Funcall || expr.FuncallName != "len" {
		t.Fatalf("got %+v, want Funcall(len)", expr)
	}
	if len(expr.FuncallArgs) != 1 || expr.FuncallArgs[0].Kind != ast.Binding || expr.FuncallArgs[0].BindingName != "s" {
		t.Errorf("got args %+v, want [Binding(s)]", expr.FuncallArgs)
	}
}

func TestExprFromView_emptyFuncall(t *testing.T) {
	expr, err := parser.ExprFromView(token.View(`len()`), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.FuncallArgs) != 0 {
		t.Errorf("got %d args, want 0", len(expr.FuncallArgs))
	}
}

func TestExprFromView_emptyExpressionErrors(t *testing.T) {
	if _, err := parser.ExprFromView(token.View(""), loc); err == nil {
		t.Fatal("expected an error for an empty expression")
	}
}

func TestExprFromView_missingCloseParenErrors(t *testing.T) {
	if _, err := parser.ExprFromView(token.View(`len(s`), loc); err == nil {
		t.Fatal("expected an error for a missing closing paren")
	}
}
