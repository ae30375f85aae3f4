// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"context"
	"strings"

	"gopkg.microglot.org/combine.go/iter"
)

// Flatten expands trees into a flat token sequence, each group becoming
// its open delimiter, its flattened contents, and its close delimiter. The
// delimiters are emitted as Punct values with Joint spacing on the opener,
// so a printed group hugs its contents the way it was written.
func Flatten(trees []Tree) []Tree {
	out := make([]Tree, 0, len(trees))
	return flattenInto(out, trees)
}

func flattenInto(out []Tree, trees []Tree) []Tree {
	for _, t := range trees {
		group, ok := t.(Group)
		if !ok {
			out = append(out, t)
			continue
		}
		out = append(out, Punct{Spelling: group.Delimiter.Open(), Spacing: SpacingJoint})
		out = flattenInto(out, group.Trees)
		out = append(out, Punct{Spelling: group.Delimiter.Close()})
	}
	return out
}

// Stream returns the flattened token sequence as an iterator.
func Stream(trees []Tree) iter.Iterator[Tree] {
	return iter.NewSlice(Flatten(trees))
}

// Print re-emits source text from trees. Tokens are separated by single
// spaces except after a Joint punctuation token and before a closing
// delimiter, so parsing the printed text yields an equal tree.
func Print(trees []Tree) string {
	ctx := context.Background()
	stream := iter.NewLookahead(Stream(trees), 1)
	var sb strings.Builder
	for cur := stream.Next(ctx); cur.IsPresent(); cur = stream.Next(ctx) {
		sb.WriteString(cur.Value().String())
		next := stream.Lookahead(ctx, 1)
		if !next.IsPresent() {
			break
		}
		if joint(cur.Value()) || closer(next.Value()) {
			continue
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

func joint(t Tree) bool {
	p, ok := t.(Punct)
	return ok && p.Spacing == SpacingJoint
}

func closer(t Tree) bool {
	p, ok := t.(Punct)
	if !ok {
		return false
	}
	switch p.Spelling {
	case ")", "]", "}":
		return true
	default:
		return false
	}
}
