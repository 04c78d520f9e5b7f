// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package files

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/crashappsec/testkit/internal/utils"
	errs "github.com/crashappsec/testkit/pkg/errors"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// tempPattern is passed to [os.CreateTemp]; the "*" is replaced by a random string.
const tempPattern = "testkit-*"

// TempFile is a file in the platform temporary directory that is removed
// when the TempFile is closed. It exclusively owns both the descriptor and
// the file on disk; no two TempFiles share a path.
//
// The scope of a TempFile ends with [TempFile.Close]. Tie it to the
// enclosing function with
//
//	defer tf.Release()
//
// or use [NewTempFile], which registers the same cleanup with the test.
// On those paths a failure to remove the file is logged through the global
// zap logger and never returned.
type TempFile struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	closed bool
}

// TryNewTempFile creates a uniquely named file in [os.TempDir], writes
// contents to it exactly and syncs it to disk. The returned TempFile's
// descriptor is left open, positioned after the written contents.
//
// Errors are [*errs.Error] values wrapping the underlying os error.
func TryNewTempFile(contents string) (*TempFile, error) {
	f, err := os.CreateTemp("", tempPattern)
	if err != nil {
		return nil, errs.FromOS("create temp file in", os.TempDir(), err)
	}
	tf := &TempFile{file: f, path: f.Name()}

	if err := writeAndSync(f, contents); err != nil {
		tf.Release()
		return nil, err
	}

	zap.L().Debug("created temp file", zap.String("path", tf.path), zap.Int("size", len(contents)))
	return tf, nil
}

// Path returns the absolute path of the file.
func (tf *TempFile) Path() string {
	return tf.path
}

// File returns the open descriptor. Closing it directly is allowed;
// [TempFile.Close] still removes the file afterwards.
func (tf *TempFile) File() *os.File {
	return tf.file
}

// Close closes the descriptor and removes the file. Failures of both steps
// are combined into the returned error. Calling Close again returns an
// error wrapping [os.ErrClosed], which [TempFile.Release] ignores.
func (tf *TempFile) Close() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		closed := &fs.PathError{Op: "close", Path: tf.path, Err: os.ErrClosed}
		return errs.New(errs.TypeIO, closed, "temp file already closed")
	}
	tf.closed = true

	var merr *multierror.Error
	if err := tf.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		merr = multierror.Append(merr, errs.FromOS("close", tf.path, err))
	}
	if err := os.Remove(tf.path); err != nil {
		merr = multierror.Append(merr, errs.FromOS("remove", tf.path, err))
	}

	zap.L().Debug("removed temp file", zap.String("path", tf.path))
	return merr.ErrorOrNil()
}

// Release closes and removes the file like [TempFile.Close], logging any
// failure instead of returning it. It is meant for defer statements and
// test cleanups, and is a no-op after the file has been closed.
func (tf *TempFile) Release() {
	utils.CloseAndLog(tf, zap.String("path", tf.path))
}
