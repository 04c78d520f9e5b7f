// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package utils

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

type Closer interface {
	Close() error
}

// CloseAndLog is a utility function that closes a resource and logs any error that occurs.
// It should be used for defers and test cleanups, where an error has nowhere to go.
// Errors wrapping [os.ErrClosed] are ignored, so a resource already closed by the
// caller does not produce noise.
func CloseAndLog(c Closer, keysAndValues ...zap.Field) {
	if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		zap.L().Error("failed to close", append(keysAndValues, zap.Error(err))...)
	}
}

// CallAndLogWithArg is a utility function that calls a function with an argument and logs any error that occurs.
// It is useful for defers to ensure that the function is called properly and any errors are logged.
func CallAndLogWithArg[A any](c func(A) error, arg A) {
	if err := c(arg); err != nil {
		zap.L().Error("failed to call cleanup", zap.Error(err))
	}
}
