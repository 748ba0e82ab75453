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

// Package parser implements a recursive-descent, operator-precedence parser
// over lexer.Tokens, producing an ast.Expr tree.
//
//	expr      := gt
//	gt        := sum ( '>' gt )?            // right-associative by construction
//	sum       := primary ( '+' sum )?       // right-associative by construction
//	primary   := STRING | CHAR | NUMBER | name-or-funcall | '-' NUMBER
//	name-or-funcall := NAME ( '(' args ')' )?
//	args      := ε | expr (',' expr)*
//
// The right-associative grouping of '+' and '>' is preserved deliberately:
// dumping "1+2+3" must show "1 + (2 + 3)" (spec.md 8, property 8).
package parser

import (
	"strconv"
	"strings"

	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/lexer"
	"github.com/basmlang/basm/token"
)

// cursor is the Go analog of the C Tokens_View: a window over a token slice
// that shrinks as tokens are consumed.
type cursor struct {
	toks []lexer.Token
}

func (c *cursor) empty() bool { return len(c.toks) == 0 }

func (c *cursor) peek() lexer.Token { return c.toks[0] }

func (c *cursor) chopLeft(n int) []lexer.Token {
	if n > len(c.toks) {
		n = len(c.toks)
	}
	chopped := c.toks[:n]
	c.toks = c.toks[n:]
	return chopped
}

// ExprFromView tokenizes src and parses a full expression from it.
func ExprFromView(src token.View, loc token.Location) (ast.Expr, error) {
	toks, err := lexer.Tokenize(src, loc)
	if err != nil {
		return ast.Expr{}, err
	}
	c := &cursor{toks: toks}
	return ExprFromTokens(c, loc)
}

// ExprFromTokens is the parser's single entry point, parse_expr in spec.md.
func ExprFromTokens(c *cursor, loc token.Location) (ast.Expr, error) {
	return parseGt(c, loc)
}

func parseGt(c *cursor, loc token.Location) (ast.Expr, error) {
	left, err := parseSum(c, loc)
	if err != nil {
		return ast.Expr{}, err
	}
	if !c.empty() && c.peek().Kind == lexer.Gt {
		c.chopLeft(1)
		right, err := parseGt(c, loc)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.Binary(ast.Gt, left, right), nil
	}
	return left, nil
}

func parseSum(c *cursor, loc token.Location) (ast.Expr, error) {
	left, err := parsePrimary(c, loc)
	if err != nil {
		return ast.Expr{}, err
	}
	if !c.empty() && c.peek().Kind == lexer.Plus {
		c.chopLeft(1)
		right, err := parseSum(c, loc)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.Binary(ast.Plus, left, right), nil
	}
	return left, nil
}

func parseNumber(c *cursor, loc token.Location) (ast.Expr, error) {
	if c.empty() {
		return ast.Expr{}, diag.Errf(loc, "cannot parse empty expression")
	}
	if c.peek().Kind != lexer.Number {
		return ast.Expr{}, diag.Errf(loc, "expected %s but got %s", lexer.Number, c.peek().Kind)
	}
	text := string(c.chopLeft(1)[0].Text)

	if strings.HasPrefix(text, "0x") {
		v, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			return ast.Expr{}, diag.Errf(loc, "`%s` is not a hex literal", text)
		}
		return ast.Int(v), nil
	}

	if v, err := strconv.ParseUint(text, 10, 64); err == nil {
		return ast.Int(v), nil
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return ast.Float(f), nil
	}

	return ast.Expr{}, diag.Errf(loc, "`%s` is not a number literal", text)
}

func parsePrimary(c *cursor, loc token.Location) (ast.Expr, error) {
	if c.empty() {
		return ast.Expr{}, diag.Errf(loc, "cannot parse empty expression")
	}

	switch c.peek().Kind {
	case lexer.String:
		text := c.chopLeft(1)[0].Text
		return ast.Str(text), nil

	case lexer.Char:
		text := c.chopLeft(1)[0].Text
		if len(text) != 1 {
			return ast.Expr{}, diag.Errf(loc, "the length of char literal has to be exactly one")
		}
		return ast.Char(text[0]), nil

	case lexer.Name:
		name := c.toks[0].Text
		if len(c.toks) > 1 && c.toks[1].Kind == lexer.OpenParen {
			c.chopLeft(1)
			args, err := parseFuncallArgs(c, loc)
			if err != nil {
				return ast.Expr{}, err
			}
			return ast.Call(name, args), nil
		}
		c.chopLeft(1)
		return ast.Bind(name), nil

	case lexer.Number:
		return parseNumber(c, loc)

	case lexer.Minus:
		c.chopLeft(1)
		expr, err := parseNumber(c, loc)
		if err != nil {
			return ast.Expr{}, err
		}
		switch expr.Kind {
		case ast.LitInt:
			expr.LitIntValue = ^expr.LitIntValue + 1
		case ast.LitFloat:
			expr.LitFloatValue = -expr.LitFloatValue
		}
		return expr, nil

	default:
		return ast.Expr{}, diag.Errf(loc, "expected primary expression but found %s", c.peek().Kind)
	}
}

// parseFuncallArgs parses the "( args )" suffix of a function call. The
// caller has already consumed the NAME token; the OPEN_PAREN is still at the
// head of the cursor.
func parseFuncallArgs(c *cursor, loc token.Location) ([]ast.Expr, error) {
	if c.empty() || c.peek().Kind != lexer.OpenParen {
		return nil, diag.Errf(loc, "expected %s", lexer.OpenParen)
	}
	c.chopLeft(1)

	if !c.empty() && c.peek().Kind == lexer.CloseParen {
		c.chopLeft(1)
		return nil, nil
	}

	var args []ast.Expr
	for {
		arg, err := ExprFromTokens(c, loc)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if c.empty() {
			return nil, diag.Errf(loc, "expected %s or %s", lexer.CloseParen, lexer.Comma)
		}
		tok := c.chopLeft(1)[0]
		if tok.Kind == lexer.Comma {
			continue
		}
		if tok.Kind != lexer.CloseParen {
			return nil, diag.Errf(loc, "expected %s", lexer.CloseParen)
		}
		break
	}
	return args, nil
}
