// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides context-wrapped error handling,
// with errors that carry the call stack where they were made,
// and helpers for logging or panicking on errors inline.
package errors

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents an error with a base error and a stack trace.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
// An error that is already an [*Error] is returned as-is.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Base:  err,
		Stack: callers(),
	}
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. It is the equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace via [Wrap]. It is the equivalent of [fmt.Errorf],
// so %w verbs still work with [Is] and [As] on the base errors.
// If an argument is already an [*Error], its base error is formatted
// instead and its stack is kept, so that the text has only one stack.
func Errorf(format string, a ...any) error {
	var inner *Error
	for i, v := range a {
		e, ok := v.(*Error)
		if !ok {
			continue
		}
		if inner == nil {
			inner = e
			a = slices.Clone(a)
		}
		a[i] = e.Base
	}
	err := fmt.Errorf(format, a...)
	if inner != nil {
		return &Error{Base: err, Stack: inner.Stack}
	}
	return Wrap(err)
}

// Error returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// String returns the error as a string, the same as [Error.Error].
func (e *Error) String() string {
	return e.Error()
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is [errors.Is], re-exported so that callers only need this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As], re-exported so that callers only need this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
