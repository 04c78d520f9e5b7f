// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package random generates random values for tests.
//
// All functions draw from the process-wide generator of [math/rand/v2], which
// is seeded from the operating system on first use and is safe for concurrent
// use. No seeding is exposed, so output is not reproducible between runs, and
// nothing here is suitable for cryptographic purposes.
//
// Functions with a precondition (a non-empty range, a non-negative length)
// panic when it is violated. Those are mistakes in the calling test, not
// conditions to recover from.
package random

import (
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types the generators accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Generate returns a random value of type T.
//
// Integer types are uniform over their whole domain. Float types are
// uniform in [0, 1), the standard distribution for floating point values.
func Generate[T Scalar]() T {
	switch kindOf[T]() {
	case reflect.Float32:
		return T(rand.Float32())
	case reflect.Float64:
		return T(rand.Float64())
	default:
		return T(rand.Uint64())
	}
}

// GenerateBool returns true or false with equal probability.
func GenerateBool() bool {
	return rand.Uint64()&1 == 1
}

// GenerateRange returns a value uniformly distributed in the half-open range [lo, hi).
//
// It panics if the range is empty, that is when lo >= hi or either bound is NaN,
// or if a float bound is infinite.
//
//	port := random.GenerateRange(49152, 65536)
//	ratio := random.GenerateRange(0.25, 0.75)
func GenerateRange[T Scalar](lo, hi T) T {
	if !(lo < hi) {
		panic(fmt.Sprintf("random: cannot sample empty range [%v, %v)", lo, hi))
	}
	if isFloat[T]() {
		mustBeFinite(lo, hi, ")")
		return floatBetween(lo, hi, false)
	}
	return lo + T(rand.Uint64N(span(lo, hi)))
}

// GenerateRangeInclusive returns a value uniformly distributed in the closed range [lo, hi].
// For float types hi itself is only reachable through rounding.
//
// It panics if lo > hi, either bound is NaN, or a float bound is infinite.
func GenerateRangeInclusive[T Scalar](lo, hi T) T {
	if !(lo <= hi) {
		panic(fmt.Sprintf("random: cannot sample empty range [%v, %v]", lo, hi))
	}
	if isFloat[T]() {
		mustBeFinite(lo, hi, "]")
		if lo == hi {
			return lo
		}
		return floatBetween(lo, hi, true)
	}
	s := span(lo, hi)
	if s == math.MaxUint64 {
		return lo + T(rand.Uint64())
	}
	return lo + T(rand.Uint64N(s+1))
}

// GenerateBytes returns length random bytes. It panics if length is negative.
func GenerateBytes(length int) []byte {
	if length < 0 {
		panic("random: negative byte length")
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rand.Uint32())
	}
	return b
}

// span is hi - lo for integer types, computed in two's complement so it
// cannot overflow for any pair of valid bounds.
func span[T Scalar](lo, hi T) uint64 {
	return uint64(hi) - uint64(lo)
}

func mustBeFinite[T Scalar](lo, hi T, closing string) {
	if math.IsInf(float64(lo), 0) || math.IsInf(float64(hi), 0) {
		panic(fmt.Sprintf("random: cannot sample unbounded range [%v, %v%s", lo, hi, closing))
	}
}

func floatBetween[T Scalar](lo, hi T, inclusive bool) T {
	l, h := float64(lo), float64(hi)
	for {
		f := rand.Float64()
		// interpolating avoids overflowing h-l for bounds near ±MaxFloat64
		v := T(l*(1-f) + h*f)
		if v >= lo && (v < hi || (inclusive && v == hi)) {
			return v
		}
	}
}

func kindOf[T Scalar]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

func isFloat[T Scalar]() bool {
	k := kindOf[T]()
	return k == reflect.Float32 || k == reflect.Float64
}
