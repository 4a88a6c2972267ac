/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package errors defines the structured failure type shared across the
// validation engine. Every validator reports exactly one Failure per run,
// carrying a stable code, the offending path, and a human-readable message.
package errors

import (
	"errors"
	"fmt"
)

// Failure codes as constants.
const (
	// ErrCodePathMissing indicates a required file or directory is absent.
	ErrCodePathMissing = "PATH_MISSING"

	// ErrCodeWrongPathKind indicates the path exists but is the wrong kind
	// (a directory where a regular file was expected, or vice versa).
	ErrCodeWrongPathKind = "WRONG_PATH_KIND"

	// ErrCodeContentUnreadable indicates file bytes could not be parsed
	// under the declared content type.
	ErrCodeContentUnreadable = "CONTENT_UNREADABLE"

	// ErrCodeContentInvalid indicates parsed content failed scheme
	// construction (missing required field, malformed field, arity
	// mismatch, unsupported top-level shape).
	ErrCodeContentInvalid = "CONTENT_INVALID"

	// ErrCodeHashMismatch indicates a computed digest differs from the
	// expected digest.
	ErrCodeHashMismatch = "HASH_MISMATCH"

	// ErrCodeIOFailure indicates a transient filesystem error (permission
	// denied, read error). Never conflated with PATH_MISSING.
	ErrCodeIOFailure = "IO_FAILURE"

	// ErrCodeInvalidScheme indicates a validation scheme could not be
	// constructed (bad manifest kind, malformed digest, bad pattern).
	ErrCodeInvalidScheme = "INVALID_SCHEME"
)

// Failure is the structured error value produced by validators.
type Failure struct {
	// Code is one of the ErrCode* constants.
	Code string

	// Path is the filesystem path the failure refers to, when available.
	Path string

	// Message is a human-readable description of the violation.
	Message string

	// Err is the underlying cause, when the failure wraps one.
	Err error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	msg := f.Message
	if f.Path != "" {
		msg = fmt.Sprintf("%s: %s", f.Path, msg)
	}
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Code, msg, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (f *Failure) Unwrap() error {
	return f.Err
}

// New creates a Failure with the given code and message.
func New(code, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// Newf creates a Failure with a formatted message.
func Newf(code, format string, args ...any) *Failure {
	return &Failure{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithPath creates a Failure bound to a filesystem path.
func WithPath(code, path, message string) *Failure {
	return &Failure{Code: code, Path: path, Message: message}
}

// Wrap creates a Failure bound to a path that carries an underlying cause.
func Wrap(code, path, message string, err error) *Failure {
	return &Failure{Code: code, Path: path, Message: message, Err: err}
}

// CodeOf extracts the failure code from an error chain.
// Returns the empty string when err carries no Failure.
func CodeOf(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return ""
}

// PathOf extracts the failing path from an error chain.
// Returns the empty string when err carries no Failure or the Failure has
// no path.
func PathOf(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Path
	}
	return ""
}
