// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVersion is returned when the version flag is given but no
	// version could be resolved.
	ErrUnknownVersion = errors.New("Unknown version.")

	// ErrNoAction is returned by Call when the command has no action.
	ErrNoAction = errors.New("command has no action")
)

// UnknownFlagError is returned when a flag matches no option and the
// command uses UnknownAsError.
type UnknownFlagError struct {
	Flag    string
	Command string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("Unknown flag %q.", e.Flag)
}

// RequiredArgumentError is returned when a required argument is missing or
// its parser produced nothing.
type RequiredArgumentError struct {
	Param string // e.g. "<name>"
}

func (e *RequiredArgumentError) Error() string {
	return fmt.Sprintf("Argument %q is required.", e.Param)
}

// RequiredOptionError is returned when a required option produced no value.
type RequiredOptionError struct {
	Flag string // long flag, e.g. "--flag"
}

func (e *RequiredOptionError) Error() string {
	return fmt.Sprintf("Option %q must specify a value.", e.Flag)
}

// ValueError is returned when a parser rejects a value. Its message is the
// parser's own message so that users see e.g. "Unable to parse number.".
type ValueError struct {
	Name  string // "<name>" for arguments, "--flag" for options
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return e.Err.Error()
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
