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

// Package diag implements the located diagnostics every translation error is
// reported through. This replaces the original C translator's
// fprintf-then-exit(1) policy with a recoverable error value; only the CLI
// driver collapses it to a fatal process exit.
package diag

import (
	"fmt"
	"strings"

	"github.com/basmlang/basm/token"
)

// Severity distinguishes the two diagnostic lines basm ever emits.
type Severity int

const (
	// Error marks the diagnostic that ends translation.
	Error Severity = iota
	// Note annotates an Error with supporting context, such as the location
	// of a prior, conflicting binding.
	Note
)

func (s Severity) String() string {
	if s == Note {
		return "NOTE"
	}
	return "ERROR"
}

// Diagnostic is a single located message.
type Diagnostic struct {
	Loc      token.Location
	Severity Severity
	Msg      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Loc, d.Severity, d.Msg)
}

// List is an ordered run of diagnostics treated as a single fatal error. It
// holds exactly one entry for most categories, and two -- ERROR followed by
// NOTE -- for duplicate-binding reports (spec.md 7).
type List []Diagnostic

// Error satisfies the error interface.
func (l List) Error() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Errf builds a single-entry fatal diagnostic.
func Errf(loc token.Location, format string, args ...interface{}) List {
	return List{{Loc: loc, Severity: Error, Msg: fmt.Sprintf(format, args...)}}
}

// ErrfNote builds a two-entry fatal diagnostic: an ERROR at loc, followed by
// a NOTE at noteLoc pointing back at earlier, relevant context.
func ErrfNote(loc token.Location, msg string, noteLoc token.Location, noteMsg string) List {
	return List{
		{Loc: loc, Severity: Error, Msg: msg},
		{Loc: noteLoc, Severity: Note, Msg: noteMsg},
	}
}
