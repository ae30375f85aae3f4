// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"gopkg.microglot.org/combine.go/parse"
	"gopkg.microglot.org/combine.go/token"
)

// StaticItem is a lazily initialized static declaration:
//
//	[pub] static ref NAME : TYPE = EXPR ;
//
// TYPE and EXPR are token tree runs; their internal grammar is the
// caller's concern.
type StaticItem struct {
	Public bool
	Name   token.Ident
	Type   []token.Tree
	Init   []token.Tree
}

// Static parses one StaticItem.
func Static(s parse.State) parse.Result[StaticItem] {
	return parse.Do(func(b *parse.Binder) StaticItem {
		visibility := parse.Bind(b, parse.Option(parse.Keyword("pub")))
		parse.Bind(b, parse.Keyword("static"))
		parse.Bind(b, parse.Keyword("ref"))
		name := parse.Bind(b, parse.Parser[token.Ident](Ident))
		parse.Bind(b, parse.Punct(":"))
		ty := parse.Bind(b, treesUntil("="))
		parse.Bind(b, parse.CondReduce(len(ty) > 0, parse.Epsilon()))
		parse.Bind(b, parse.Punct("="))
		init := parse.Bind(b, treesUntil(";"))
		parse.Bind(b, parse.CondReduce(len(init) > 0, parse.Epsilon()))
		parse.Bind(b, parse.Punct(";"))
		return StaticItem{
			Public: visibility.IsPresent(),
			Name:   name,
			Type:   ty,
			Init:   init,
		}
	})(s)
}

// Statics parses a whole input of static declarations.
func Statics(s parse.State) parse.Result[[]StaticItem] {
	return parse.Many0(parse.Parser[StaticItem](Static))(s)
}

// treesUntil parses token trees up to, but not including, the given
// top-level punctuation. Occurrences inside groups do not stop the run
// because a group is a single tree, and the stop check goes through the
// operator munch so that "=" does not stop a run at "==".
func treesUntil(stop string) parse.Parser[[]token.Tree] {
	one := parse.Preceded(
		parse.Not(operatorIs(stop)),
		parse.Parser[token.Tree](TokenTree),
	)
	return parse.Many0(one)
}

// operatorIs parses one punctuation token and succeeds only when its
// spelling is exactly the given one.
func operatorIs(spelling string) parse.Parser[token.Punct] {
	return func(s parse.State) parse.Result[token.Punct] {
		r := Operator(s)
		if !r.IsDone() || r.Value().Spelling != spelling {
			return parse.Fail[token.Punct]()
		}
		return r
	}
}

// ArgumentList parses a parenthesized, comma-separated, non-empty list of
// identifiers.
func ArgumentList(s parse.State) parse.Result[[]token.Ident] {
	return parse.Delimited(
		parse.Punct("("),
		parse.SeparatedNonEmpty(parse.Punct(","), parse.Parser[token.Ident](Ident)),
		parse.Punct(")"),
	)(s)
}
