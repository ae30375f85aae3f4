// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"unicode/utf8"
)

// Tag matches the literal tag at the current position. The value is the
// matched slice of the buffer.
func Tag(tag string) Parser[string] {
	return func(s State) Result[string] {
		if s.StartsWith(tag) {
			return Done(s.Advance(len(tag)), s.Until(len(tag)))
		}
		return Fail[string]()
	}
}

// TakeWhile1 consumes the maximal leading run of code points satisfying
// pred. It fails if the run is empty.
func TakeWhile1(pred func(rune) bool) Parser[string] {
	return func(s State) Result[string] {
		offset := s.Len()
		for o, c := range s.Rest() {
			if !pred(c) {
				offset = o
				break
			}
		}
		if offset == 0 {
			return Fail[string]()
		}
		if offset < s.Len() {
			return Done(s.Advance(offset), s.Until(offset))
		}
		return Done(s.Finish(), s.Rest())
	}
}

// TakeUntil scans forward for the first occurrence of substr and consumes
// everything before it, leaving the State positioned at the occurrence. It
// fails if substr does not occur. The scan compares code points through a
// sliding window, so a multi-code-point substr is found at its leftmost,
// possibly overlapping, occurrence.
func TakeUntil(substr string) Parser[string] {
	want := []rune(substr)
	return func(s State) Result[string] {
		if len(substr) > s.Len() {
			return Fail[string]()
		}
		if len(want) == 0 {
			if s.IsEmpty() {
				return Fail[string]()
			}
			return Done(s, "")
		}
		window := make([]rune, 0, len(want))
		for o, c := range s.Rest() {
			window = append(window, c)
			if len(window) > len(want) {
				window = window[1:]
			}
			if runesEqual(window, want) {
				// o is the byte offset of the last code point of the
				// match; step back over the rest of it.
				offset := o - (len(substr) - utf8.RuneLen(c))
				return Done(s.Advance(offset), s.Until(offset))
			}
		}
		return Fail[string]()
	}
}

func runesEqual(a []rune, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for x := 0; x < len(a); x = x + 1 {
		if a[x] != b[x] {
			return false
		}
	}
	return true
}
