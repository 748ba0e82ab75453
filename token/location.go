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

// Package token provides the non-owning source view and file-location types
// shared by the lexer, parser and translator.
package token

import "fmt"

// Location identifies a line in a source file, for diagnostics.
type Location struct {
	Path string
	Line int
}

// String renders the location in the "<path>:<line>:" form every basm
// diagnostic is prefixed with.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:", l.Path, l.Line)
}
