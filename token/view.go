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

package token

import "strings"

// View is a read-only range over a character buffer owned elsewhere. Go
// strings are already immutable slices over backing memory, so View is a
// plain string with chop/trim primitives attached -- the idiomatic
// replacement for the arena-owned String_View of the original C translator.
type View string

const whitespace = " \t\r\n"

// Empty reports whether the view has zero length.
func (v View) Empty() bool { return len(v) == 0 }

// String satisfies fmt.Stringer.
func (v View) String() string { return string(v) }

// TrimLeft strips leading whitespace in place.
func (v *View) TrimLeft() {
	*v = View(strings.TrimLeft(string(*v), whitespace))
}

// TrimRight strips trailing whitespace in place.
func (v *View) TrimRight() {
	*v = View(strings.TrimRight(string(*v), whitespace))
}

// Trim strips leading and trailing whitespace in place.
func (v *View) Trim() {
	v.TrimLeft()
	v.TrimRight()
}

// ChopLeft removes and returns the first n bytes of v. n is clamped to the
// view's length.
func (v *View) ChopLeft(n int) View {
	s := string(*v)
	if n > len(s) {
		n = len(s)
	}
	*v = View(s[n:])
	return View(s[:n])
}

// ChopByDelim removes and returns everything up to (but excluding) the first
// occurrence of delim, also consuming the delimiter itself. If delim is not
// present, the whole view is chopped off and v becomes empty.
func (v *View) ChopByDelim(delim byte) View {
	s := string(*v)
	i := strings.IndexByte(s, delim)
	if i < 0 {
		*v = ""
		return View(s)
	}
	*v = View(s[i+1:])
	return View(s[:i])
}

// IndexByte returns the index of the first occurrence of b in v, or -1.
func (v View) IndexByte(b byte) int {
	return strings.IndexByte(string(v), b)
}

// ChopLeftWhile removes and returns the maximal prefix of v for which
// predicate holds for every byte.
func (v *View) ChopLeftWhile(predicate func(byte) bool) View {
	s := string(*v)
	i := 0
	for i < len(s) && predicate(s[i]) {
		i++
	}
	return v.ChopLeft(i)
}

// HasPrefix reports whether v starts with prefix.
func (v View) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(v), prefix)
}

// Eq reports byte-wise equality. Ordering is irrelevant to this language.
func (v View) Eq(other View) bool { return v == other }
