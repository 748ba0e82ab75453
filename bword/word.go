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

// Package bword implements the 64-bit Word: a bit pattern interpreted as
// unsigned, signed or floating-point depending on how its producer built it.
package bword

import "math"

// Word is a 64-bit machine word. The bits themselves carry no type tag; the
// evaluator's producer decides how to read them back.
type Word struct {
	bits uint64
}

// U64 builds a Word from an unsigned 64-bit value.
func U64(v uint64) Word { return Word{bits: v} }

// I64 builds a Word from a signed 64-bit value, two's-complement encoded.
func I64(v int64) Word { return Word{bits: uint64(v)} }

// F64 builds a Word from a float64, stored as its IEEE-754 bit pattern.
func F64(v float64) Word { return Word{bits: math.Float64bits(v)} }

// AsU64 reads the word as unsigned.
func (w Word) AsU64() uint64 { return w.bits }

// AsI64 reads the word as signed.
func (w Word) AsI64() int64 { return int64(w.bits) }

// AsF64 reads the word as an IEEE-754 double.
func (w Word) AsF64() float64 { return math.Float64frombits(w.bits) }
