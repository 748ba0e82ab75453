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

// Package config holds the TOML-backed knobs a basm invocation can tune:
// include-recursion depth and the image format constants. Unlike the
// original C translator's compile-time capacity constants, these are
// optional -- Default supplies working values so the translator runs with
// zero configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config groups the translator's tunables.
type Config struct {
	// MaxIncludeLevel bounds %include recursion depth. This is the one
	// capacity bound the original bounded-array design keeps even after
	// switching program/memory/bindings to growable slices (spec.md 9):
	// protection against infinite include cycles.
	MaxIncludeLevel int `toml:"max_include_level"`

	// Magic and Version are stamped into the image header (spec.md 4.H) and
	// checked by any reader.
	Magic   uint32 `toml:"-"`
	Version uint16 `toml:"-"`

	// NativeNames, if non-empty, is an informative list of native-function
	// names a host VM exposes. The translator does not require it --
	// %native bindings work regardless -- but tooling can use it to flag a
	// %native name the host never registers.
	NativeNames []string `toml:"native_names"`
}

const (
	defaultMagic   uint32 = 0x4D534142 // bytes "BASM" when stored little-endian
	defaultVersion uint16 = 1
)

// Default returns the configuration basm runs with when no config file is
// supplied.
func Default() *Config {
	return &Config{
		MaxIncludeLevel: 34,
		Magic:           defaultMagic,
		Version:         defaultVersion,
	}
}

// Load reads and merges a TOML config file over Default. A missing file is
// not an error -- it simply yields the defaults, mirroring how basm itself
// requires no configuration to assemble a file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.Magic = defaultMagic
	cfg.Version = defaultVersion
	return cfg, nil
}
