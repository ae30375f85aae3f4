// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location is a position within the parsed buffer. Line and Column are
// derived from the byte offset and are 1-based.
type Location struct {
	Offset int
	Line   int32
	Column int32
}

// LocationAt computes the line and column of a byte offset into input. An
// offset outside [0, len(input)] is clamped.
func LocationAt(input string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	loc := Location{Offset: offset, Line: 1, Column: 1}
	for _, b := range []byte(input[:offset]) {
		if b == '\n' {
			loc.Line = loc.Line + 1
			loc.Column = 1
			continue
		}
		loc.Column = loc.Column + 1
	}
	return loc
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	return fmt.Sprintf("%d:%d -- %s: %s", e.location.Line, e.location.Column, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exc{
		location: location,
		message:  message,
		code:     code,
	}
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}
