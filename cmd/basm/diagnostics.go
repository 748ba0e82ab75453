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

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/basmlang/basm/diag"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgCyan)
)

// printErr renders err to w. A diag.List is rendered diagnostic-by-diagnostic
// with ERROR lines in red and NOTE lines in cyan; any other error (a
// resource failure reported via github.com/pkg/errors) is printed as-is,
// with its full causal chain under --debug.
func printErr(w io.Writer, err error, debug bool) {
	if list, ok := err.(diag.List); ok {
		for _, d := range list {
			c := errorColor
			if d.Severity == diag.Note {
				c = noteColor
			}
			c.Fprintln(w, d.String())
		}
		return
	}

	if debug {
		fmt.Fprintf(w, "%+v\n", err)
		return
	}
	errorColor.Fprintln(w, err)
}
