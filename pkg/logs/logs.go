// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package logs replaces the global [zap] logger for the duration of a test.
// The helpers in this module log cleanup failures through [zap.L], so tests
// that care about those failures can capture and inspect them here.
package logs

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// lockedBuffer lets the logger write while the test reads.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Read(p)
}

// CaptureLogs sets up the logger to output to a buffer for testing purposes.
// This is useful for capturing logs during tests and verifying their content.
// Reading from the returned reader consumes what has been logged so far.
func CaptureLogs(t testing.TB) io.Reader {
	t.Helper()
	buffer := &lockedBuffer{}
	replaceGlobals(t, zapcore.AddSync(buffer))
	return buffer
}

// EnableLogs sets up the logger to output to stderr for testing purposes.
// This is useful for debugging failures in tests.
func EnableLogs(t testing.TB) {
	t.Helper()
	replaceGlobals(t, zapcore.Lock(os.Stderr))
}

func replaceGlobals(t testing.TB, ws zapcore.WriteSyncer) {
	globalRevert := zap.ReplaceGlobals(zap.New(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()),
			ws,
			zapcore.DebugLevel,
		)))
	t.Cleanup(globalRevert)
}
