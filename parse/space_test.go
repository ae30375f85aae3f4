// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipSpace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		rest  string
	}{
		{input: "x", rest: "x"},
		{input: "", rest: ""},
		{input: "   x", rest: "x"},
		{input: "\t\r\n x", rest: "x"},
		{input: "// comment\nx", rest: "x"},
		{input: "// comment at eof", rest: ""},
		{input: "/* block */x", rest: "x"},
		{input: "/* outer /* inner */ still outer */x", rest: "x"},
		{input: "  // one\n  /* two */ // three\n  x", rest: "x"},
		// an unterminated block comment is not skipped
		{input: "/* open x", rest: "/* open x"},
	}
	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("%q", testCase.input), func(t *testing.T) {
			require.Equal(t, testCase.rest, SkipSpace(NewState(testCase.input)).Rest())
		})
	}
}

func TestWordBreak(t *testing.T) {
	t.Parallel()

	require.True(t, WordBreak(NewState("")).IsDone())
	require.True(t, WordBreak(NewState(" x")).IsDone())
	require.True(t, WordBreak(NewState("(x)")).IsDone())
	require.False(t, WordBreak(NewState("x")).IsDone())
	require.False(t, WordBreak(NewState("_")).IsDone())
	require.False(t, WordBreak(NewState("9")).IsDone())

	// never consumes
	r := WordBreak(NewState("(x)"))
	require.True(t, LooksLike(r, "(x)", ""))
}

func TestPunct(t *testing.T) {
	t.Parallel()

	r := Punct("::")(NewState("  // sep\n:: rest"))
	require.True(t, LooksLike(r, " rest", "::"))

	require.False(t, Punct("::")(NewState(" : rest")).IsDone())
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	r := Keyword("static")(NewState(" static ref"))
	require.True(t, LooksLike(r, " ref", "static"))

	// a keyword never matches a prefix of a longer word
	require.False(t, Keyword("static")(NewState(" staticref")).IsDone())
	require.False(t, Keyword("ref")(NewState("reference x")).IsDone())

	r = Keyword("ref")(NewState("ref(x)"))
	require.True(t, LooksLike(r, "(x)", "ref"))
}
