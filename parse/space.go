// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"strings"
	"unicode"
)

// SkipSpace advances past any leading run of whitespace, line comments, and
// block comments, in any interleaving. It never fails; when there is
// nothing to skip the State comes back unchanged. Block comments nest; an
// unterminated block comment is not skipped, so the parse stops in front of
// it.
func SkipSpace(s State) State {
	for !s.IsEmpty() {
		rest := s.Rest()
		switch {
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				return s.Finish()
			}
			s = s.Advance(end + 1)
		case strings.HasPrefix(rest, "/*"):
			next, ok := skipBlockComment(s)
			if !ok {
				return s
			}
			s = next
		default:
			r, size := s.NextRune()
			if !unicode.IsSpace(r) {
				return s
			}
			s = s.Advance(size)
		}
	}
	return s
}

// skipBlockComment consumes a block comment starting at s, honoring
// nesting. The second return is false when the comment never terminates.
func skipBlockComment(s State) (State, bool) {
	depth := 0
	for !s.IsEmpty() {
		rest := s.Rest()
		switch {
		case strings.HasPrefix(rest, "/*"):
			depth = depth + 1
			s = s.Advance(2)
		case strings.HasPrefix(rest, "*/"):
			depth = depth - 1
			s = s.Advance(2)
			if depth == 0 {
				return s, true
			}
		default:
			_, size := s.NextRune()
			s = s.Advance(size)
		}
	}
	return s, false
}

// WordBreak succeeds, consuming nothing, when the current position is not
// in the middle of a word: end-of-input, or a next code point that cannot
// continue an identifier.
func WordBreak(s State) Result[string] {
	r, _ := s.NextRune()
	if s.IsEmpty() || !isWordContinue(r) {
		return Done(s, "")
	}
	return Fail[string]()
}

func isWordContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Punct skips leading whitespace and comments, then matches the given
// punctuation spelling. The value is the spelling.
func Punct(spelling string) Parser[string] {
	tag := Tag(spelling)
	return func(s State) Result[string] {
		return tag(SkipSpace(s))
	}
}

// Keyword skips leading whitespace and comments, then matches the given
// word, requiring a word break after it so that a keyword never matches a
// prefix of a longer identifier.
func Keyword(word string) Parser[string] {
	tag := Tag(word)
	return func(s State) Result[string] {
		r := tag(SkipSpace(s))
		if !r.IsDone() {
			return r
		}
		if !WordBreak(r.State()).IsDone() {
			return Fail[string]()
		}
		return r
	}
}
