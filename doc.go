// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package testkit is a collection of small helpers for writing tests.
// It is meant to be required as a test dependency only.
//
// The helpers are independent of each other:
//   - [github.com/crashappsec/testkit/pkg/random] generates random numbers, bytes,
//     strings and file names that should not exist.
//   - [github.com/crashappsec/testkit/pkg/sliceext] shuffles slices and picks
//     random elements from them.
//   - [github.com/crashappsec/testkit/pkg/files] creates temporary and named files
//     seeded with content, and removes them again.
//
// Cleanup failures that cannot be returned are logged through the global zap
// logger; [github.com/crashappsec/testkit/pkg/logs] captures them in tests.
package testkit
