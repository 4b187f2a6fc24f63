// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package cerrors

import (
	"fmt"
)

// ErrUsage indicates that the client was invoked with too few key=value
// tokens to build a trigger.
type ErrUsage struct {
	Got  int
	Want int
}

// Error returns the error string associated with the error
func (e *ErrUsage) Error() string {
	return fmt.Sprintf("expected at least %d key=value arguments, got %d", e.Want, e.Got)
}

// ErrMalformedToken indicates that a command line token does not contain
// exactly one '=' separator.
type ErrMalformedToken struct {
	Token string
}

// Error returns the error string associated with the error
func (e *ErrMalformedToken) Error() string {
	return fmt.Sprintf("malformed argument '%s': expected exactly one '=' in key=value", e.Token)
}

// ErrInvalidValue indicates that a recognized key carries a value that
// cannot be converted (e.g. a non-numeric card_type).
type ErrInvalidValue struct {
	Key   string
	Value string
	Err   error
}

// Error returns the error string associated with the error
func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value '%s' for key '%s': %v", e.Value, e.Key, e.Err)
}

// Unwrap returns the conversion error
func (e *ErrInvalidValue) Unwrap() error {
	return e.Err
}

// ErrBuildFailed is returned by the status poller when the CI server reports
// a terminal failure for the triggered run.
type ErrBuildFailed struct {
	PRID string
	Log  string
}

// Error returns the error string associated with the error
func (e *ErrBuildFailed) Error() string {
	return fmt.Sprintf("CI run for pr %s failed", e.PRID)
}

// ErrUnexpectedStatus is returned by the status poller when the CI server
// reports a terminal status code that is neither success nor failure.
type ErrUnexpectedStatus struct {
	Status int
}

// Error returns the error string associated with the error
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("CI server reported unexpected terminal status %d", e.Status)
}
