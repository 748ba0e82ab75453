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
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/diag"
	"github.com/basmlang/basm/eval"
	"github.com/basmlang/basm/internal/isa"
)

// resolveDeferredOperands is pass two: every operand slot left pointing at
// a name instead of a value gets that name resolved now. call/native
// instructions are further constrained to the binding kind they require.
func (t *Translator) resolveDeferredOperands() error {
	for _, d := range t.DeferredOperands {
		name := d.Expr.BindingName
		b, ok := t.Bindings.Resolve(name)
		if !ok {
			return diag.Errf(d.Loc, "could find binding `%s`.", name)
		}

		instKind := t.Program[d.ProgramAddr].Type
		if instKind == isa.Call && b.Kind != bind.Label {
			return diag.Errf(d.Loc, "trying to call not a label. `%s` is %s, but the call instruction accepts only literals or labels.", name, b.Kind)
		}
		if instKind == isa.Native && b.Kind != bind.Native {
			return diag.Errf(d.Loc, "trying to invoke native function from a binding that is %s. Bindings for native functions have to be defined via `%%native` directive.", b.Kind)
		}

		w, err := eval.Binding(t, b, d.Loc)
		if err != nil {
			return err
		}
		t.Program[d.ProgramAddr].Operand = w
	}
	return nil
}

func (t *Translator) evalDeferredAsserts() error {
	for _, da := range t.DeferredAsserts {
		w, err := eval.Expr(t, da.Expr, da.Loc)
		if err != nil {
			return err
		}
		if w.AsU64() == 0 {
			return diag.Errf(da.Loc, "assertion failed")
		}
	}
	return nil
}

func (t *Translator) resolveEntry() error {
	if !t.HasEntry {
		return nil
	}

	b, ok := t.Bindings.Resolve(t.DeferredEntryName)
	if !ok {
		return diag.Errf(t.EntryLocation, "could find binding `%s`.", t.DeferredEntryName)
	}
	if b.Kind != bind.Label {
		return diag.Errf(t.EntryLocation, "trying to set a %s as an entry point. Entry point has to be a label.", b.Kind)
	}

	w, err := eval.Binding(t, b, t.EntryLocation)
	if err != nil {
		return err
	}
	t.Entry = w.AsU64()
	return nil
}
