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

package ast

import (
	"fmt"
	"strings"
)

// Dump renders e as an indented tree, one node per line, the shape
// `basm dump <expr>` prints before evaluating the expression.
func Dump(e Expr) string {
	var b strings.Builder
	dump(&b, e, 0)
	return b.String()
}

func dump(b *strings.Builder, e Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e.Kind {
	case LitInt:
		fmt.Fprintf(b, "%sLitInt(%d)\n", indent, e.LitIntValue)
	case LitFloat:
		fmt.Fprintf(b, "%sLitFloat(%v)\n", indent, e.LitFloatValue)
	case LitChar:
		fmt.Fprintf(b, "%sLitChar(%q)\n", indent, rune(e.LitCharValue))
	case LitStr:
		fmt.Fprintf(b, "%sLitStr(%q)\n", indent, string(e.LitStrValue))
	case Binding:
		fmt.Fprintf(b, "%sBinding(%s)\n", indent, e.BindingName)
	case BinaryOp:
		fmt.Fprintf(b, "%sBinaryOp(%s)\n", indent, e.BinOpKind)
		dump(b, *e.BinOpLeft, depth+1)
		dump(b, *e.BinOpRight, depth+1)
	case Funcall:
		fmt.Fprintf(b, "%sFuncall(%s)\n", indent, e.FuncallName)
		for _, arg := range e.FuncallArgs {
			dump(b, arg, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s<unknown kind %d>\n", indent, e.Kind)
	}
}
