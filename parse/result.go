// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"fmt"
	"reflect"
)

// Result is the outcome of applying a Parser: either success carrying the
// remaining State and a value, or failure carrying nothing. Failure is the
// ordinary, recoverable outcome used by alternation and repetition; it
// deliberately has no payload, so callers resume from their own pre-attempt
// State.
type Result[T any] struct {
	state State
	value T
	done  bool
}

// Done builds a success Result.
func Done[T any](s State, v T) Result[T] {
	return Result[T]{state: s, value: v, done: true}
}

// Fail builds the failure Result.
func Fail[T any]() Result[T] {
	return Result[T]{}
}

func (self Result[T]) IsDone() bool {
	return self.done
}

// State returns the remaining State of a success. Calling it on a failure
// is a defect in the calling parser and panics; no State is ever carried
// alongside failure.
func (self Result[T]) State() State {
	if !self.done {
		panic("parse: State() called on a failed Result")
	}
	return self.state
}

// Value returns the parsed value of a success, or the zero value on failure.
func (self Result[T]) Value() T {
	return self.value
}

// Expect unwraps the result of a whole-input parse. Trailing whitespace and
// comments are skipped; any other unconsumed input, or a failed parse, is a
// fatal error naming the parser. This is the minimal top-level contract;
// Parse is the error-returning form.
func (self Result[T]) Expect(name string) T {
	if !self.done {
		panic(fmt.Sprintf("failed to parse %s", name))
	}
	rest := SkipSpace(self.state)
	if !rest.IsEmpty() {
		panic(fmt.Sprintf("unparsed tokens after %s: %q", name, rest.Rest()))
	}
	return self.value
}

// LooksLike reports whether r is a success whose remaining input and value
// match the given literals. It exists for tests, not production code.
func LooksLike[T any](r Result[T], rest string, want T) bool {
	if !r.done {
		return false
	}
	return r.state.Rest() == rest && reflect.DeepEqual(r.value, want)
}
