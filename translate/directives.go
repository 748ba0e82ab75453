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
	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/parser"
	"github.com/basmlang/basm/token"
)

// translateDirective dispatches on a pre-processor directive keyword (the
// text after '%', up to the first space). line is what remained of the
// source line after the directive keyword was chopped off; each branch
// consumes it as its own argument text.
func (t *Translator) translateDirective(keyword string, line *token.View, loc token.Location) error {
	switch keyword {
	case "bind":
		return diag.Errf(loc, "%%bind directive has been removed! Use %%const directive to define consts. Use %%native directive to define native functions.")
	case "const":
		return t.translateBindDirective(line, loc, bind.Const)
	case "native":
		return t.translateBindDirective(line, loc, bind.Native)
	case "assert":
		return t.translateAssertDirective(line, loc)
	case "include":
		return t.translateIncludeDirective(line, loc)
	case "entry":
		return t.translateEntryDirective(line, loc)
	default:
		return diag.Errf(loc, "unknown pre-processor directive `%s`", keyword)
	}
}

func (t *Translator) translateBindDirective(line *token.View, loc token.Location, kind bind.Kind) error {
	line.Trim()
	name := line.ChopByDelim(' ')
	if name.Empty() {
		return diag.Errf(loc, "binding name is not provided")
	}

	line.Trim()
	expr, err := parser.ExprFromView(*line, loc)
	if err != nil {
		return err
	}

	return t.Bindings.BindExpr(name, expr, kind, loc)
}

func (t *Translator) translateAssertDirective(line *token.View, loc token.Location) error {
	line.Trim()
	expr, err := parser.ExprFromView(*line, loc)
	if err != nil {
		return err
	}
	t.DeferredAsserts = append(t.DeferredAsserts, DeferredAssert{Expr: expr, Loc: loc})
	return nil
}

func (t *Translator) translateIncludeDirective(line *token.View, loc token.Location) error {
	line.Trim()
	if line.Empty() {
		return diag.Errf(loc, "include file path is not provided")
	}

	s := string(*line)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return diag.Errf(loc, "include file path has to be surrounded with quotation marks")
	}
	filePath := s[1 : len(s)-1]

	if t.IncludeLevel+1 >= t.Config.MaxIncludeLevel {
		return diag.Errf(loc, "exceeded maximum include level")
	}

	prevLoc := t.IncludeLocation
	t.IncludeLevel++
	t.IncludeLocation = loc

	err := t.TranslateSource(filePath)

	t.IncludeLevel--
	t.IncludeLocation = prevLoc

	return err
}

func (t *Translator) translateEntryDirective(line *token.View, loc token.Location) error {
	if t.HasEntry {
		return diag.ErrfNote(loc, "entry point has been already set!", t.EntryLocation, "the first entry point")
	}

	line.Trim()
	expr, err := parser.ExprFromView(*line, loc)
	if err != nil {
		return err
	}
	if expr.Kind != ast.Binding {
		return diag.Errf(loc, "only bindings are allowed to be set as entry points for now.")
	}

	t.DeferredEntryName = expr.BindingName
	t.HasEntry = true
	t.EntryLocation = loc
	return nil
}
