// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package token is the token tree data model shared by the parsing and
// re-emission directions. A tree is an identifier, a literal, a
// punctuation token, or a delimited group of further trees. Nodes hold the
// byte span they were parsed from; the span is copies of offsets only,
// never a view into the buffer.
package token

import (
	"fmt"
	"strings"

	"gopkg.microglot.org/combine.go/parse"
)

// interface for all token tree nodes
type Tree interface {
	fmt.Stringer
	tree()
}

// Spacing records whether a punctuation token is glued to the token after
// it (Joint) or separated from it (Alone).
type Spacing uint16

const (
	SpacingAlone Spacing = 0
	SpacingJoint Spacing = 1
)

// Delimiter identifies the bracket pair of a Group.
type Delimiter uint16

const (
	DelimiterParen   Delimiter = 0
	DelimiterBracket Delimiter = 1
	DelimiterBrace   Delimiter = 2
)

func (self Delimiter) Open() string {
	switch self {
	case DelimiterBracket:
		return "["
	case DelimiterBrace:
		return "{"
	default:
		return "("
	}
}

func (self Delimiter) Close() string {
	switch self {
	case DelimiterBracket:
		return "]"
	case DelimiterBrace:
		return "}"
	default:
		return ")"
	}
}

type Ident struct {
	Name string
	Span parse.Span
}

func (self Ident) tree() {}

func (self Ident) String() string {
	return self.Name
}

// Literal is a number or string literal, held as its exact source spelling
// (quotes and digit separators included) so re-emission never mangles it.
type Literal struct {
	Text string
	Span parse.Span
}

func (self Literal) tree() {}

func (self Literal) String() string {
	return self.Text
}

type Punct struct {
	Spelling string
	Spacing  Spacing
	Span     parse.Span
}

func (self Punct) tree() {}

func (self Punct) String() string {
	return self.Spelling
}

type Group struct {
	Delimiter Delimiter
	Trees     []Tree
	Span      parse.Span
}

func (self Group) tree() {}

func (self Group) String() string {
	return Print([]Tree{self})
}

// Equal compares two trees structurally, ignoring spans.
func Equal(a Tree, b Tree) bool {
	switch av := a.(type) {
	case Ident:
		bv, ok := b.(Ident)
		return ok && av.Name == bv.Name
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Text == bv.Text
	case Punct:
		bv, ok := b.(Punct)
		return ok && av.Spelling == bv.Spelling && av.Spacing == bv.Spacing
	case Group:
		bv, ok := b.(Group)
		return ok && av.Delimiter == bv.Delimiter && EqualTrees(av.Trees, bv.Trees)
	default:
		return false
	}
}

// EqualTrees compares two tree slices element-wise, ignoring spans.
func EqualTrees(a []Tree, b []Tree) bool {
	if len(a) != len(b) {
		return false
	}
	for x := 0; x < len(a); x = x + 1 {
		if !Equal(a[x], b[x]) {
			return false
		}
	}
	return true
}

// Format renders a tree slice for debugging, one node per line with
// groups indented.
func Format(trees []Tree) string {
	var sb strings.Builder
	formatInto(&sb, trees, 0)
	return sb.String()
}

func formatInto(sb *strings.Builder, trees []Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range trees {
		switch v := t.(type) {
		case Group:
			fmt.Fprintf(sb, "%sgroup %s%s\n", indent, v.Delimiter.Open(), v.Delimiter.Close())
			formatInto(sb, v.Trees, depth+1)
		case Punct:
			spacing := "alone"
			if v.Spacing == SpacingJoint {
				spacing = "joint"
			}
			fmt.Fprintf(sb, "%spunct %q %s\n", indent, v.Spelling, spacing)
		case Ident:
			fmt.Fprintf(sb, "%sident %s\n", indent, v.Name)
		case Literal:
			fmt.Fprintf(sb, "%sliteral %s\n", indent, v.Text)
		}
	}
}
