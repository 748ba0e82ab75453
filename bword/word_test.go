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

package bword_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basmlang/basm/bword"
)

func TestWord_u64RoundTrip(t *testing.T) {
	w := bword.U64(0xFFFFFFFFFFFFFFFF)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), w.AsU64())
}

func TestWord_i64RoundTrip(t *testing.T) {
	w := bword.I64(-1)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), w.AsU64(), "two's complement of -1")
	assert.Equal(t, int64(-1), w.AsI64())
}

func TestWord_f64RoundTrip(t *testing.T) {
	w := bword.F64(3.14)
	assert.Equal(t, math.Float64bits(3.14), w.AsU64(), "IEEE-754 bit pattern of 3.14")
	assert.Equal(t, 3.14, w.AsF64())
}
