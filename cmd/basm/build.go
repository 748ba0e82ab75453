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
	"os"

	"github.com/spf13/cobra"

	"github.com/basmlang/basm/config"
	"github.com/basmlang/basm/image"
	"github.com/basmlang/basm/translate"
)

func newBuildCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "build <input.basm>",
		Short: "translate a source file into a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			inputPath := args[0]
			if outPath == "" {
				outPath = inputPath + ".bm"
			}

			cfg, err := loadConfig()
			if err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}

			log.WithField("input", inputPath).Debug("starting translation")
			t := translate.New(cfg)
			defer t.Close()
			if err := t.TranslateSource(inputPath); err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}
			log.WithFields(logFieldsFor(t)).Debug("translation complete")

			out, err := os.Create(outPath)
			if err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}
			defer out.Close()

			if err := image.Write(out, t, cfg.Magic, cfg.Version); err != nil {
				printErr(os.Stderr, err, debug)
				os.Exit(1)
			}

			log.WithField("output", outPath).Info("image written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output image path (default: <input>.bm)")
	return cmd
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func logFieldsFor(t *translate.Translator) map[string]interface{} {
	return map[string]interface{}{
		"program_size": len(t.Program),
		"memory_size":  len(t.Memory),
		"entry":        t.Entry,
		"has_entry":    t.HasEntry,
	}
}
