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

// Package lexer turns a token.View into a bounded sequence of Tokens. It does
// not distinguish integer from float or hex from decimal -- that is the
// parser's job.
package lexer

import (
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/token"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	String Kind = iota
	Char
	Plus
	Minus
	Number
	Name
	OpenParen
	CloseParen
	Comma
	Gt
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Char:
		return "character"
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Number:
		return "number"
	case Name:
		return "name"
	case OpenParen:
		return "open paren"
	case CloseParen:
		return "closing paren"
	case Comma:
		return "comma"
	case Gt:
		return ">"
	default:
		return "unknown"
	}
}

// Token is a lexical unit: its kind and the source text it spans.
type Token struct {
	Kind Kind
	Text token.View
}

func isName(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func isNumberRune(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '.'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Tokenize scans src into a slice of Tokens. loc is used only to locate
// lexical errors; it does not advance per-token (the lexer works on a single
// logical line already isolated by the translator).
func Tokenize(src token.View, loc token.Location) ([]Token, error) {
	var tokens []Token

	src.TrimLeft()
	for !src.Empty() {
		s := string(src)
		c := s[0]
		switch c {
		case '(':
			tokens = append(tokens, Token{Kind: OpenParen, Text: src.ChopLeft(1)})
		case ')':
			tokens = append(tokens, Token{Kind: CloseParen, Text: src.ChopLeft(1)})
		case ',':
			tokens = append(tokens, Token{Kind: Comma, Text: src.ChopLeft(1)})
		case '>':
			tokens = append(tokens, Token{Kind: Gt, Text: src.ChopLeft(1)})
		case '+':
			tokens = append(tokens, Token{Kind: Plus, Text: src.ChopLeft(1)})
		case '-':
			tokens = append(tokens, Token{Kind: Minus, Text: src.ChopLeft(1)})
		case '"':
			src.ChopLeft(1)
			idx := src.IndexByte('"')
			if idx < 0 {
				return nil, diag.Errf(loc, "could not find closing quote")
			}
			text := src.ChopLeft(idx)
			src.ChopLeft(1)
			tokens = append(tokens, Token{Kind: String, Text: text})
		case '\'':
			src.ChopLeft(1)
			idx := src.IndexByte('\'')
			if idx < 0 {
				return nil, diag.Errf(loc, "could not find closing quote")
			}
			text := src.ChopLeft(idx)
			src.ChopLeft(1)
			tokens = append(tokens, Token{Kind: Char, Text: text})
		default:
			switch {
			case isAlpha(c):
				tokens = append(tokens, Token{Kind: Name, Text: src.ChopLeftWhile(isName)})
			case isDigit(c):
				tokens = append(tokens, Token{Kind: Number, Text: src.ChopLeftWhile(isNumberRune)})
			default:
				return nil, diag.Errf(loc, "unknown token starts with %c", c)
			}
		}
		src.TrimLeft()
	}

	return tokens, nil
}
