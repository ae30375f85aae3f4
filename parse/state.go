// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"fmt"
	"unicode/utf8"
)

// State is an immutable view of a source buffer with a current byte offset.
// Every operation returns a new State; a State is never mutated, so copies
// taken before a speculative parse remain valid after it fails.
type State struct {
	input  string
	offset int
}

// NewState returns a State positioned at the start of input.
func NewState(input string) State {
	return State{input: input}
}

// Rest returns the unconsumed suffix of the buffer.
func (self State) Rest() string {
	return self.input[self.offset:]
}

func (self State) IsEmpty() bool {
	return self.offset == len(self.input)
}

// Len is the number of unconsumed bytes.
func (self State) Len() int {
	return len(self.input) - self.offset
}

func (self State) StartsWith(prefix string) bool {
	return len(self.input)-self.offset >= len(prefix) && self.input[self.offset:self.offset+len(prefix)] == prefix
}

// Until returns the first n bytes of the unconsumed suffix. Used to extract
// matched text before advancing past it.
func (self State) Until(n int) string {
	return self.input[self.offset : self.offset+n]
}

// Advance returns a State n bytes further into the buffer. Advancing past
// the end of the buffer is a defect in the calling parser, not a parse
// failure, and panics.
func (self State) Advance(n int) State {
	offset := self.offset + n
	if n < 0 || offset > len(self.input) {
		panic(fmt.Sprintf("parse: advance(%d) out of range at offset %d of %d", n, self.offset, len(self.input)))
	}
	return State{input: self.input, offset: offset}
}

// Finish returns a State positioned at end-of-input.
func (self State) Finish() State {
	return State{input: self.input, offset: len(self.input)}
}

func (self State) Offset() int {
	return self.offset
}

// NextRune decodes the first rune of the unconsumed suffix. The second
// return is its size in bytes, zero at end-of-input.
func (self State) NextRune() (rune, int) {
	if self.IsEmpty() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(self.Rest())
}

// Span is a pair of byte offsets identifying a slice of the source buffer.
// It holds copies of the offsets only, never a reference into the buffer.
type Span struct {
	Lo int
	Hi int
}
