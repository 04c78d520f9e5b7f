// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package errors provides a way to create and handle errors with types and messages.
// Errors from this package are returned by the file helpers in
// [github.com/crashappsec/testkit/pkg/files] and classify the underlying
// filesystem failure by [Type]. The original error is always wrapped, so
// [errors.Is] checks against [io/fs] sentinels keep working.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Type represents the type of error.
// It should describe the class of filesystem failure that occurred.
type Type = uint8

const (
	// TypeUnknown is used when the error type is not known.
	TypeUnknown Type = iota
	// TypeNotFound is used when the file or directory does not exist.
	TypeNotFound
	// TypePermission is used when the caller lacks permission for the operation.
	TypePermission
	// TypeExists is used when the file already exists.
	TypeExists
	// TypeIO is used for any other failure reported by the filesystem,
	// such as a full disk or a closed descriptor.
	TypeIO
)

// Error represents an error with a type and a message.
// It wraps the original error if one is provided.
type Error struct {
	Wrapped error
	Type    Type
	Message string
}

// New creates a new error with the given type, wrapped error, message and arguments.
// The message is formatted using [fmt.Sprintf] with the provided arguments.
func New(ty Type, wrapped error, msg string, args ...any) *Error {
	return &Error{
		Wrapped: wrapped,
		Type:    ty,
		Message: fmt.Sprintf(msg, args...),
	}
}

// FromOS wraps an error returned by the os package into an [Error],
// classifying it by the [io/fs] sentinel it matches. The message records
// the operation and path. A nil err yields nil.
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return New(classify(err), err, "%s %s", op, path)
}

func classify(err error) Type {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return TypeNotFound
	case errors.Is(err, fs.ErrPermission):
		return TypePermission
	case errors.Is(err, fs.ErrExist):
		return TypeExists
	default:
		return TypeIO
	}
}

// IsType reports whether err is, or wraps, an [Error] of the given type.
func IsType(err error, ty Type) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == ty
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Wrapped, target)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
