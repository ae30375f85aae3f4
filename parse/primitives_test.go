// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		tag   string
		input string
		rest  string
		ok    bool
	}{
		{name: "match at start", tag: "fn", input: "fn foo", rest: " foo", ok: true},
		{name: "no match", tag: "fn", input: "struct foo", ok: false},
		{name: "exact match", tag: "fn", input: "fn", rest: "", ok: true},
		{name: "input shorter than tag", tag: "fn", input: "f", ok: false},
		{name: "empty input", tag: "fn", input: "", ok: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := Tag(testCase.tag)(NewState(testCase.input))
			if !testCase.ok {
				require.False(t, r.IsDone())
				return
			}
			require.True(t, LooksLike(r, testCase.rest, testCase.tag))
		})
	}
}

func TestTakeWhile1(t *testing.T) {
	t.Parallel()

	digits := TakeWhile1(unicode.IsDigit)

	r := digits(NewState("123abc"))
	require.True(t, LooksLike(r, "abc", "123"))

	// consumes the whole remainder
	r = digits(NewState("123"))
	require.True(t, LooksLike(r, "", "123"))

	// minimum one
	require.False(t, digits(NewState("abc")).IsDone())
	require.False(t, digits(NewState("")).IsDone())
}

func TestTakeUntil(t *testing.T) {
	t.Parallel()

	r := TakeUntil("##")(NewState("1 + 1 ## rest"))
	require.True(t, LooksLike(r, "## rest", "1 + 1 "))

	require.False(t, TakeUntil("##")(NewState("no marker here")).IsDone())

	// match at the very start consumes nothing
	r = TakeUntil("##")(NewState("## rest"))
	require.True(t, LooksLike(r, "## rest", ""))

	// overlapping candidate prefixes resolve to the leftmost match
	r = TakeUntil("aab")(NewState("aaaab!"))
	require.True(t, LooksLike(r, "aab!", "aa"))
}

func TestTakeUntilUnicode(t *testing.T) {
	t.Parallel()

	r := TakeUntil("état")(NewState("un état"))
	require.True(t, LooksLike(r, "état", "un "))

	r = TakeUntil("éé")(NewState("eéeéé."))
	require.True(t, LooksLike(r, "éé.", "eée"))
}
