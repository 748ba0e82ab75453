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
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "basm",
		Short: "basm assembles and inspects images for a small stack machine",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a basm.toml configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print full error causes instead of the top-level message")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each translation step")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newDumpCmd())
	return root
}

var (
	cfgFile string
	debug   bool
	verbose bool
)
