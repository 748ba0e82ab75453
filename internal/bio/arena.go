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

// Package bio - or basm-internal-io - groups the small I/O helpers the
// translator consumes but does not specify: a bump-style arena for slurped
// file contents and an error-tracking io.Writer.
package bio

import (
	"os"

	"github.com/pkg/errors"
)

// Arena owns the text of every file slurped during a translation, including
// nested %include files. Go's garbage collector makes true bump allocation
// unnecessary for correctness; Arena keeps the interface spec.md's Component
// B describes (SlurpFile, Alloc) so the translator's ownership story and
// %include recursion match the original design. Release drops, in bulk, the
// arena's references to the buffers Alloc handed out.
type Arena struct {
	scratch [][]byte
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// SlurpFile reads the whole file at path and returns its contents as a
// string owned by the arena for the remainder of the translation.
func (a *Arena) SlurpFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "could not read file")
	}
	return string(data), nil
}

// Alloc returns a fresh zeroed byte buffer of the requested size, tracked by
// the arena so Release can account for it.
func (a *Arena) Alloc(n int) []byte {
	b := make([]byte, n)
	a.scratch = append(a.scratch, b)
	return b
}

// Release drops the arena's references to every buffer it handed out. Safe
// to call once, at the end of the top-level translation.
func (a *Arena) Release() {
	a.scratch = nil
}
