// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package sliceext adds random shuffle and selection to slices.
//
// The operations are available both as generic functions over any slice type
// and as methods on the [Slice] wrapper, which can be converted to and from a
// plain slice without copying:
//
//	numbers := sliceext.Slice[int]{1, 2, 3, 4, 5}
//	numbers.Shuffle()
//	if p := numbers.ChooseMut(); p != nil {
//		*p = 10
//	}
//
// Randomness comes from the same process-wide source as
// [github.com/crashappsec/testkit/pkg/random].
package sliceext

import "github.com/crashappsec/testkit/pkg/random"

// Slice is a slice with random shuffle and selection methods.
type Slice[E any] []E

// Shuffle reorders s in place with a uniformly random permutation.
func (s Slice[E]) Shuffle() { Shuffle(s) }

// Choose returns a uniformly random element of s, and false if s is empty.
func (s Slice[E]) Choose() (E, bool) { return Choose(s) }

// ChooseMut returns a pointer to a uniformly random element of s, or nil if s is empty.
func (s Slice[E]) ChooseMut() *E { return ChooseMut(s) }

// ChooseIndex returns a uniformly random index in [0, n). It panics if n <= 0.
func ChooseIndex(n int) int {
	return random.GenerateRange(0, n)
}

// Shuffle reorders the elements of s in place so that every permutation is
// equally likely (Fisher-Yates). Slices of length 0 or 1 are left untouched.
func Shuffle[S ~[]E, E any](s S) {
	for i := len(s) - 1; i > 0; i-- {
		j := ChooseIndex(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Choose returns a copy of a uniformly random element of s. The second
// result is false, and the first the zero value, when s is empty.
// s is never modified.
func Choose[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[ChooseIndex(len(s))], true
}

// ChooseMut returns a pointer to a uniformly random element of s, or nil
// when s is empty. Writing through the pointer replaces the element in s.
// The pointer aliases the backing array, so it must not be held across
// appends that may reallocate s.
func ChooseMut[S ~[]E, E any](s S) *E {
	if len(s) == 0 {
		return nil
	}
	return &s[ChooseIndex(len(s))]
}
