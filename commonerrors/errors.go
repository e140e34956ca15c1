/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error kinds returned by the playground packages.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty          = errors.New("empty")
	ErrOutOfRange     = errors.New("out of range")
	ErrInvalid        = errors.New("invalid")
	ErrUndefined      = errors.New("undefined")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnsupported    = errors.New("unsupported")
	ErrNotFound       = errors.New("not found")
	ErrCondition      = errors.New("failed condition")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrEOF            = errors.New("end of file")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// New returns an error of type targetErr with a reason.
func New(targetErr error, reason string) error {
	if targetErr == nil {
		return errors.New(reason)
	}
	if strings.TrimSpace(reason) == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, reason)
}

// Newf is similar to New but allows formatting the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. If the error is nil, nil is returned.
// The original error is still reachable through errors.Is.
func WrapError(targetError, originalError error, message string) error {
	if originalError == nil {
		return nil
	}
	if targetError == nil {
		targetError = ErrUnexpected
	}
	if Any(originalError, targetError) {
		if message == "" {
			return originalError
		}
		return fmt.Errorf("%v: %w", message, originalError)
	}
	if message == "" {
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, message, originalError)
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// Ignore returns nil if err is of one of the types ignored.
func Ignore(err error, ignored ...error) error {
	if Any(err, ignored...) {
		return nil
	}
	return err
}

// Join joins errors together, discarding nil ones.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// CorrespondTo determines whether the message of an error contains any of the descriptions provided.
// The comparison is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}
