// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package grammar holds grammar productions built on the parse package.
// Every production is a named parser: an ordinary function with the
// Parser signature, so it composes into larger combinator expressions the
// same way the built-in combinators do.
package grammar

import (
	"unicode"

	"gopkg.microglot.org/combine.go/parse"
	"gopkg.microglot.org/combine.go/token"
)

// TokenTree parses one token tree: an identifier, a literal, a
// punctuation token, or a delimited group. Leading whitespace and comments
// are skipped.
func TokenTree(s parse.State) parse.Result[token.Tree] {
	return parse.Alt(
		parse.Map(parse.Parser[token.Group](Group), func(g token.Group) token.Tree { return g }),
		parse.Map(parse.Parser[token.Ident](Ident), func(i token.Ident) token.Tree { return i }),
		parse.Map(parse.Parser[token.Literal](Literal), func(l token.Literal) token.Tree { return l }),
		parse.Map(parse.Parser[token.Punct](Operator), func(p token.Punct) token.Tree { return p }),
	)(s)
}

// TokenTrees parses zero or more token trees up to the first position
// where none matches, typically end-of-input or a closing delimiter.
func TokenTrees(s parse.State) parse.Result[[]token.Tree] {
	return parse.Many0(parse.Parser[token.Tree](TokenTree))(s)
}

// Ident parses an identifier: a letter or underscore followed by any run
// of letters, digits, and underscores. Keywords are not reserved; a DSL
// that treats a word specially parses it with parse.Keyword instead.
func Ident(s parse.State) parse.Result[token.Ident] {
	s = parse.SkipSpace(s)
	first, _ := s.NextRune()
	if first != '_' && !unicode.IsLetter(first) {
		return parse.Fail[token.Ident]()
	}
	r := parse.TakeWhile1(isIdentContinue)(s)
	if !r.IsDone() {
		return parse.Fail[token.Ident]()
	}
	return parse.Done(r.State(), token.Ident{
		Name: r.Value(),
		Span: parse.Span{Lo: s.Offset(), Hi: r.State().Offset()},
	})
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Literal parses a number or string literal, keeping its exact spelling.
func Literal(s parse.State) parse.Result[token.Literal] {
	s = parse.SkipSpace(s)
	first, _ := s.NextRune()
	switch {
	case first == '"':
		return stringLiteral(s)
	case unicode.IsDigit(first):
		return numberLiteral(s)
	default:
		return parse.Fail[token.Literal]()
	}
}

func stringLiteral(s parse.State) parse.Result[token.Literal] {
	rest := s.Rest()
	for x := 1; x < len(rest); x = x + 1 {
		switch rest[x] {
		case '\\':
			x = x + 1
		case '"':
			return parse.Done(s.Advance(x+1), token.Literal{
				Text: s.Until(x + 1),
				Span: parse.Span{Lo: s.Offset(), Hi: s.Offset() + x + 1},
			})
		}
	}
	return parse.Fail[token.Literal]()
}

func numberLiteral(s parse.State) parse.Result[token.Literal] {
	rest := s.Rest()
	x := 0
	for x < len(rest) {
		c := rest[x]
		switch {
		case c == '_' || c == '.' || ('0' <= c && c <= '9') ||
			('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
			// a dot only continues the literal when a digit follows;
			// otherwise it is range or member punctuation.
			if c == '.' && (x+1 >= len(rest) || rest[x+1] < '0' || rest[x+1] > '9') {
				return doneNumber(s, x)
			}
			x = x + 1
		default:
			return doneNumber(s, x)
		}
	}
	return doneNumber(s, x)
}

func doneNumber(s parse.State, n int) parse.Result[token.Literal] {
	return parse.Done(s.Advance(n), token.Literal{
		Text: s.Until(n),
		Span: parse.Span{Lo: s.Offset(), Hi: s.Offset() + n},
	})
}

// Operator parses one punctuation token by maximal munch over the
// punctuation table. Spacing is Joint when another punctuation token
// begins immediately after, with no whitespace between.
func Operator(s parse.State) parse.Result[token.Punct] {
	s = parse.SkipSpace(s)
	// a slash still standing after SkipSpace can open an unterminated
	// block comment, which is not a division token
	if s.StartsWith("/*") {
		return parse.Fail[token.Punct]()
	}
	spelling, ok := token.MatchPunct(s.Rest())
	if !ok {
		return parse.Fail[token.Punct]()
	}
	next := s.Advance(len(spelling))
	spacing := token.SpacingAlone
	// a following slash only glues when it is another punctuation token,
	// not the start of a comment
	if !next.IsEmpty() && token.IsPunctStart(next.Rest()[0]) &&
		!next.StartsWith("//") && !next.StartsWith("/*") {
		spacing = token.SpacingJoint
	}
	return parse.Done(next, token.Punct{
		Spelling: spelling,
		Spacing:  spacing,
		Span:     parse.Span{Lo: s.Offset(), Hi: next.Offset()},
	})
}

// group bodies keyed by the open delimiter the Switch discriminant
// matched. Populated in init because the bodies recurse through Group
// itself; a composite literal here would be an initialization cycle.
var groupBodies = map[string]parse.Parser[token.Group]{}

func init() {
	groupBodies["("] = groupBody(token.DelimiterParen)
	groupBodies["["] = groupBody(token.DelimiterBracket)
	groupBodies["{"] = groupBody(token.DelimiterBrace)
}

func groupBody(d token.Delimiter) parse.Parser[token.Group] {
	return parse.Do(func(b *parse.Binder) token.Group {
		trees := parse.Bind(b, parse.Parser[[]token.Tree](TokenTrees))
		parse.Bind(b, parse.Punct(d.Close()))
		return token.Group{Delimiter: d, Trees: trees}
	})
}

// Group parses a delimited token tree group. The open delimiter is the
// discriminant; the matching body parser runs to the paired closer.
func Group(s parse.State) parse.Result[token.Group] {
	open := parse.Alt(parse.Punct("("), parse.Punct("["), parse.Punct("{"))
	r := parse.Switch(open, groupBodies)(s)
	if !r.IsDone() {
		return r
	}
	g := r.Value()
	g.Span = parse.Span{Lo: parse.SkipSpace(s).Offset(), Hi: r.State().Offset()}
	return parse.Done(r.State(), g)
}
