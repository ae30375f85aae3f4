// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"sort"
	"strings"
)

// punctLens maps every supported punctuation spelling to its length. The
// table is populated once and read-only afterwards, so it is safe to share
// between concurrent parses without synchronization. Delimiters are not
// punctuation; they are carried by Group.
var punctLens = map[string]int{
	"+": 1, "+=": 2,
	"&": 1, "&&": 2, "&=": 2,
	"@": 1,
	"!": 1, "!=": 2,
	"^": 1, "^=": 2,
	":": 1, "::": 2,
	",": 1,
	"/": 1, "/=": 2,
	".": 1, "..": 2, "...": 3, "..=": 3,
	"=": 1, "==": 2, "=>": 2,
	">": 1, ">=": 2, ">>": 2, ">>=": 3,
	"<": 1, "<=": 2, "<<": 2, "<<=": 3, "<-": 2,
	"*": 1, "*=": 2,
	"|": 1, "|=": 2, "||": 2,
	"#": 1,
	"?": 1,
	"-": 1, "-=": 2, "->": 2,
	"%": 1, "%=": 2,
	";": 1,
	"~": 1,
}

var punctSpellings []string

var punctStarts = map[byte]bool{}

func init() {
	punctSpellings = make([]string, 0, len(punctLens))
	for spelling := range punctLens {
		punctSpellings = append(punctSpellings, spelling)
		punctStarts[spelling[0]] = true
	}
	// longest first so prefix matching is maximal munch
	sort.Slice(punctSpellings, func(i int, j int) bool {
		if len(punctSpellings[i]) != len(punctSpellings[j]) {
			return len(punctSpellings[i]) > len(punctSpellings[j])
		}
		return punctSpellings[i] < punctSpellings[j]
	})
}

// PunctLen returns the length of a punctuation spelling, or false when the
// spelling is not a supported punctuation token.
func PunctLen(spelling string) (int, bool) {
	n, ok := punctLens[spelling]
	return n, ok
}

// Puncts returns all punctuation spellings, longest first. Callers must
// not modify the returned slice.
func Puncts() []string {
	return punctSpellings
}

// MatchPunct finds the longest punctuation spelling that prefixes s, or
// false when none does.
func MatchPunct(s string) (string, bool) {
	for _, spelling := range punctSpellings {
		if strings.HasPrefix(s, spelling) {
			return spelling, true
		}
	}
	return "", false
}

// IsPunctStart reports whether b begins some punctuation spelling. Used to
// decide Joint spacing: a punctuation token immediately followed by the
// start of another one is Joint.
func IsPunctStart(b byte) bool {
	return punctStarts[b]
}
