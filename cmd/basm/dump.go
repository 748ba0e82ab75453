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
	"os"

	"github.com/spf13/cobra"

	"github.com/basmlang/basm/ast"
	"github.com/basmlang/basm/bind"
	"github.com/basmlang/basm/bword"
	"github.com/basmlang/basm/eval"
	"github.com/basmlang/basm/parser"
	"github.com/basmlang/basm/token"
)

// standaloneEnv is a throwaway eval.Env for a single command-line
// expression: there is no translation unit backing it, so bindings never
// resolve and string literals land in a scratch buffer discarded on exit.
type standaloneEnv struct {
	bindings *bind.Table
	memory   []byte
	lengths  map[uint64]int
}

func newStandaloneEnv() *standaloneEnv {
	return &standaloneEnv{bindings: bind.NewTable(), lengths: map[uint64]int{}}
}

func (e *standaloneEnv) ResolveBinding(name token.View) (*bind.Binding, bool) {
	return e.bindings.Resolve(name)
}

func (e *standaloneEnv) PushString(s token.View) bword.Word {
	addr := uint64(len(e.memory))
	e.memory = append(e.memory, []byte(string(s))...)
	e.lengths[addr] = len(s)
	return bword.U64(addr)
}

func (e *standaloneEnv) StringLength(addr uint64) (int, bool) {
	n, ok := e.lengths[addr]
	return n, ok
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <expr>",
		Short: "parse and evaluate a single expression, printing its dump tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			loc := token.Location{Path: "<dump>", Line: 1}

			expr, err := parser.ExprFromView(token.View(args[0]), loc)
			if err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}
			fmt.Print(ast.Dump(expr))

			w, err := eval.Expr(newStandaloneEnv(), expr, loc)
			if err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}
			fmt.Printf("= %d (0x%X)\n", w.AsU64(), w.AsU64())
			return nil
		},
	}
	return cmd
}
