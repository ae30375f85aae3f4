// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package parse is a combinator engine for building recursive descent
// parsers over an in-memory buffer.
//
// A parser is any function with the Parser signature: it takes an immutable
// State and returns a Result that is either success with the remaining State
// and a value, or failure with nothing. Grammar productions are ordinary
// named functions with this signature, composed from the primitives (Tag,
// TakeWhile1, TakeUntil) and compositions (Alt, Many0, Delimited, Do, ...)
// in this package. There is no dispatch machinery behind the composition;
// everything is direct function application, so a production can be embedded
// in any combinator expression and vice versa.
//
// Data flows strictly forward through the State. Alternation and lookahead
// retry from the State they were handed; a failed speculative branch simply
// discards its intermediate State, which is why no coordination is needed to
// run independent parses in parallel.
package parse

import (
	"fmt"

	"gopkg.microglot.org/combine.go/exc"
)

// Parser consumes input from the given State and produces a Result. The
// same State may be handed to any number of parsers in any order; parsers
// never mutate it.
type Parser[T any] func(State) Result[T]

// Parse runs a parser against the whole input. The parse fails if the
// parser fails, or if it succeeds but leaves anything other than whitespace
// and comments unconsumed. The returned error is an exc.Exception naming
// the parser and the offending position.
func Parse[T any](input string, p Parser[T], name string) (T, error) {
	var zero T
	r := p(NewState(input))
	if !r.IsDone() {
		e := exc.New(exc.LocationAt(input, 0), exc.CodeParseFailed, fmt.Sprintf("failed to parse %s", name))
		return zero, e
	}
	rest := SkipSpace(r.State())
	if !rest.IsEmpty() {
		e := exc.New(
			exc.LocationAt(input, rest.Offset()),
			exc.CodeUnparsedInput,
			fmt.Sprintf("unparsed tokens after %s: %q", name, rest.Rest()),
		)
		return zero, e
	}
	return r.Value(), nil
}
