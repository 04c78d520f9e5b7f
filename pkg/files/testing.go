// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package files

import (
	"os"
	"testing"

	"github.com/crashappsec/testkit/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTempFile is [TryNewTempFile] for tests. It fails the test immediately on
// error and releases the file when the test and its subtests complete.
func NewTempFile(t testing.TB, contents string) *TempFile {
	t.Helper()
	tf, err := TryNewTempFile(contents)
	require.NoError(t, err, "failed to create temp file")
	t.Cleanup(tf.Release)
	return tf
}

// NewFile is [TryNewFile] for tests. It fails the test immediately on error
// and closes the descriptor when the test completes. The file itself is kept;
// remove it with [TryRemoveFile], [RemoveOnCleanup], or create it under
// [testing.T.TempDir].
func NewFile(t testing.TB, path, contents string) *os.File {
	t.Helper()
	f, err := TryNewFile(path, contents)
	require.NoError(t, err, "failed to create file %s", path)
	t.Cleanup(func() {
		utils.CloseAndLog(f, zap.String("path", path))
	})
	return f
}

// RemoveOnCleanup removes path when the test completes. Failures are logged,
// not reported to t.
func RemoveOnCleanup(t testing.TB, path string) {
	t.Helper()
	t.Cleanup(func() {
		utils.CallAndLogWithArg(TryRemoveFile, path)
	})
}

// AssertFileContents reads the file at path and compares it to want.
// It reports whether the contents matched.
func AssertFileContents(t testing.TB, path, want string) bool {
	t.Helper()
	got, err := os.ReadFile(path)
	if !assert.NoError(t, err, "failed to read %s", path) {
		return false
	}
	return assert.Equal(t, want, string(got), "unexpected contents in %s", path)
}
