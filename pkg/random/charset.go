// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package random

import "math/rand/v2"

// CharSet is the alphabet a random string is drawn from.
type CharSet string

const (
	// CharSetAlphaNumeric is a character set that includes letters and numbers.
	CharSetAlphaNumeric CharSet = CharSetNumeric + CharSetAlpha
	// CharSetAlpha is a character set that includes only letters.
	CharSetAlpha CharSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// CharSetNumeric is a character set that includes only numbers.
	CharSetNumeric CharSet = "0123456789"
	// CharSetSpecial is a character set that includes special characters.
	CharSetSpecial CharSet = "!@#$%^&*()_+-=[]{}|;:',.<>?/"
	// CharSetAll is a character set that includes letters, numbers, and special characters.
	CharSetAll CharSet = CharSetAlphaNumeric + CharSetSpecial
)

// GenerateString generates a random string of the specified length using the provided character set.
// Every byte of cs is equally likely at every position, so cs should be ASCII.
// It panics if cs is empty or length is negative.
func GenerateString(cs CharSet, length int) string {
	if len(cs) == 0 {
		panic("random: cannot sample from an empty character set")
	}
	if length < 0 {
		panic("random: negative string length")
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = cs[rand.IntN(len(cs))] // #nosec G404
	}
	return string(b)
}

// GenerateAlphanumeric returns a string of exactly length characters drawn
// uniformly from [CharSetAlphaNumeric]. A zero length yields "".
func GenerateAlphanumeric(length int) string {
	return GenerateString(CharSetAlphaNumeric, length)
}

// GenerateBadFile returns an alphanumeric filename of exactly length
// characters, meant to name nothing on disk so not-found paths can be tested.
//
// No filesystem access occurs. A collision with an existing entry is possible
// but, for lengths of 8 or more, exceptionally unlikely; callers needing a
// hard guarantee must check for existence themselves.
// It panics if length is not positive.
func GenerateBadFile(length int) string {
	if length <= 0 {
		panic("random: cannot generate an empty file name")
	}
	return GenerateAlphanumeric(length)
}
