// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPunctLen(t *testing.T) {
	t.Parallel()

	for _, spelling := range Puncts() {
		n, ok := PunctLen(spelling)
		require.True(t, ok)
		require.Equal(t, len(spelling), n)
	}

	_, ok := PunctLen("(")
	require.False(t, ok)
	_, ok = PunctLen("<=>")
	require.False(t, ok)
}

func TestPunctsOrdering(t *testing.T) {
	t.Parallel()

	spellings := Puncts()
	for x := 1; x < len(spellings); x = x + 1 {
		require.GreaterOrEqual(t, len(spellings[x-1]), len(spellings[x]))
	}
}

func TestMatchPunct(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "+= 1", want: "+=", ok: true},
		{input: "+ 1", want: "+", ok: true},
		{input: "..=b", want: "..=", ok: true},
		{input: "..b", want: "..", ok: true},
		{input: "<<=", want: "<<=", ok: true},
		{input: "(x)", ok: false},
		{input: "abc", ok: false},
		{input: "", ok: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			got, ok := MatchPunct(testCase.input)
			require.Equal(t, testCase.ok, ok)
			require.Equal(t, testCase.want, got)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	// spans are ignored
	require.True(t, Equal(Ident{Name: "a"}, Ident{Name: "a"}))
	require.False(t, Equal(Ident{Name: "a"}, Ident{Name: "b"}))
	require.False(t, Equal(Ident{Name: "a"}, Literal{Text: "a"}))
	require.True(t, Equal(
		Punct{Spelling: ",", Spacing: SpacingAlone},
		Punct{Spelling: ",", Spacing: SpacingAlone},
	))
	require.False(t, Equal(
		Punct{Spelling: ",", Spacing: SpacingAlone},
		Punct{Spelling: ",", Spacing: SpacingJoint},
	))
	require.True(t, Equal(
		Group{Delimiter: DelimiterParen, Trees: []Tree{Ident{Name: "a"}}},
		Group{Delimiter: DelimiterParen, Trees: []Tree{Ident{Name: "a"}}},
	))
	require.False(t, Equal(
		Group{Delimiter: DelimiterParen, Trees: []Tree{Ident{Name: "a"}}},
		Group{Delimiter: DelimiterBrace, Trees: []Tree{Ident{Name: "a"}}},
	))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	trees := []Tree{
		Ident{Name: "f"},
		Group{Delimiter: DelimiterParen, Trees: []Tree{
			Ident{Name: "a"},
			Punct{Spelling: ","},
			Ident{Name: "b"},
		}},
	}
	flat := Flatten(trees)
	require.Len(t, flat, 6)
	require.Equal(t, "f", flat[0].String())
	require.Equal(t, "(", flat[1].String())
	require.Equal(t, ")", flat[5].String())
}

func TestStream(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stream := Stream([]Tree{Ident{Name: "a"}, Punct{Spelling: ";"}})
	first := stream.Next(ctx)
	require.True(t, first.IsPresent())
	require.Equal(t, "a", first.Value().String())
	second := stream.Next(ctx)
	require.True(t, second.IsPresent())
	require.Equal(t, ";", second.Value().String())
	require.False(t, stream.Next(ctx).IsPresent())
	require.Nil(t, stream.Close(ctx))
}

func TestPrint(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		trees []Tree
		want  string
	}{
		{
			name:  "idents and alone puncts are space separated",
			trees: []Tree{Ident{Name: "a"}, Punct{Spelling: ":"}, Ident{Name: "b"}},
			want:  "a : b",
		},
		{
			name:  "joint puncts glue to the next token",
			trees: []Tree{Ident{Name: "a"}, Punct{Spelling: "::", Spacing: SpacingJoint}, Ident{Name: "b"}},
			want:  "a ::b",
		},
		{
			name: "groups hug their contents",
			trees: []Tree{
				Ident{Name: "f"},
				Group{Delimiter: DelimiterParen, Trees: []Tree{
					Ident{Name: "x"},
					Punct{Spelling: ","},
					Literal{Text: "1"},
				}},
			},
			want: "f (x , 1)",
		},
		{
			name:  "empty group",
			trees: []Tree{Group{Delimiter: DelimiterBrace, Trees: nil}},
			want:  "{}",
		},
		{
			name:  "literal spelling is preserved",
			trees: []Tree{Literal{Text: "0_4"}},
			want:  "0_4",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.want, Print(testCase.trees))
		})
	}
}
