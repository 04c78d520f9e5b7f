// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package files creates, seeds and removes files for tests that need a real
// filesystem. There is no virtualization layer; every call touches disk.
//
// Two kinds of file are supported. A [TempFile] lives in the platform
// temporary directory and is removed when closed. A named file is created
// at a path chosen by the caller with [TryNewFile] and stays until the
// caller removes it with [TryRemoveFile].
//
// Reading is left to the standard library: use the path or descriptor
// returned here with [os.ReadFile] and friends, or [ReadLines].
//
// Filesystem failures are returned as [*errs.Error] values, typed by the
// kind of failure and wrapping the os error. Nothing is retried.
package files

import (
	"bufio"
	"os"

	"github.com/crashappsec/testkit/internal/utils"
	errs "github.com/crashappsec/testkit/pkg/errors"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// maxLineSize bounds the length of a single line read by [ReadLines].
const maxLineSize = 16 << 20

// TryNewFile creates the file at path, truncating it if it exists, writes
// contents and syncs it to disk. The returned descriptor is open and owned
// by the caller, as is the file itself: it is not removed automatically.
func TryNewFile(path, contents string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.FromOS("create", path, err)
	}
	if err := writeAndSync(f, contents); err != nil {
		utils.CloseAndLog(f, zap.String("path", path))
		return nil, err
	}
	return f, nil
}

// TryRemoveFile removes the file at path. It fails if the file does not
// exist, so removing the same path twice reports an error the second time.
func TryRemoveFile(path string) error {
	return errs.FromOS("remove", path, os.Remove(path))
}

// TryRemoveFiles removes every path, continuing past failures, and returns
// all of them combined.
func TryRemoveFiles(paths ...string) error {
	var merr *multierror.Error
	for _, path := range paths {
		if err := TryRemoveFile(path); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// ReadLines returns the lines of the file at path without their line
// terminators ("\n" or "\r\n").
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.FromOS("open", path, err)
	}
	defer utils.CloseAndLog(f, zap.String("path", path))

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(nil, maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.FromOS("read", path, err)
	}
	return lines, nil
}

func writeAndSync(f *os.File, contents string) error {
	if _, err := f.WriteString(contents); err != nil {
		return errs.FromOS("write", f.Name(), err)
	}
	if err := f.Sync(); err != nil {
		return errs.FromOS("sync", f.Name(), err)
	}
	return nil
}
