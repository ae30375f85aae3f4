// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"gopkg.microglot.org/combine.go/optional"
)

// Map applies f to the value of a successful parse. Failure propagates
// unchanged. f must be total over T.
func Map[T any, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s State) Result[U] {
		r := p(s)
		if !r.IsDone() {
			return Fail[U]()
		}
		return Done(r.State(), f(r.Value()))
	}
}

// Not is negative lookahead: it succeeds, consuming nothing, exactly when p
// fails at the current position.
func Not[T any](p Parser[T]) Parser[string] {
	return func(s State) Result[string] {
		if p(s).IsDone() {
			return Fail[string]()
		}
		return Done(s, "")
	}
}

// Peek runs p and keeps its value but discards its consumption, returning
// the original State.
func Peek[T any](p Parser[T]) Parser[T] {
	return func(s State) Result[T] {
		r := p(s)
		if !r.IsDone() {
			return Fail[T]()
		}
		return Done(s, r.Value())
	}
}

// Cond runs p only when cond is true, wrapping its value in Some and
// propagating its failure. When cond is false it succeeds with None without
// invoking p at all.
func Cond[T any](cond bool, p Parser[T]) Parser[optional.Optional[T]] {
	return func(s State) Result[optional.Optional[T]] {
		if !cond {
			return Done(s, optional.None[T]())
		}
		r := p(s)
		if !r.IsDone() {
			return Fail[optional.Optional[T]]()
		}
		return Done(r.State(), optional.Some(r.Value()))
	}
}

// CondReduce delegates to p when cond is true and fails unconditionally
// when it is false. Unlike Cond there is no Optional wrapping; a false
// condition is a hard failure.
func CondReduce[T any](cond bool, p Parser[T]) Parser[T] {
	return func(s State) Result[T] {
		if !cond {
			return Fail[T]()
		}
		return p(s)
	}
}

// Option makes p optional: a failure becomes success with None and no
// consumption.
func Option[T any](p Parser[T]) Parser[optional.Optional[T]] {
	return func(s State) Result[optional.Optional[T]] {
		r := p(s)
		if !r.IsDone() {
			return Done(s, optional.None[T]())
		}
		return Done(r.State(), optional.Some(r.Value()))
	}
}

// OptVec makes a list parser optional, flattening absence into an empty
// list.
func OptVec[T any](p Parser[[]T]) Parser[[]T] {
	return func(s State) Result[[]T] {
		r := p(s)
		if !r.IsDone() {
			return Done(s, []T{})
		}
		return r
	}
}

// Preceded sequences open then body, discarding open's value.
func Preceded[A any, B any](open Parser[A], body Parser[B]) Parser[B] {
	return func(s State) Result[B] {
		r1 := open(s)
		if !r1.IsDone() {
			return Fail[B]()
		}
		return body(r1.State())
	}
}

// Terminated sequences body then close, discarding close's value.
func Terminated[A any, B any](body Parser[A], close Parser[B]) Parser[A] {
	return func(s State) Result[A] {
		r1 := body(s)
		if !r1.IsDone() {
			return Fail[A]()
		}
		r2 := close(r1.State())
		if !r2.IsDone() {
			return Fail[A]()
		}
		return Done(r2.State(), r1.Value())
	}
}

// Delimited sequences open, body, close and keeps only body's value. The
// closer parses exactly what the body left behind, so residual input
// between body and closer fails at the closer.
func Delimited[A any, B any, C any](open Parser[A], body Parser[B], close Parser[C]) Parser[B] {
	return Terminated(Preceded(open, body), close)
}

// Many0 applies p zero or more times, collecting the values. Each
// successful application must strictly consume input; a successful
// non-advancing application makes the whole repetition fail, which is the
// structural guard against infinite loops. The repetition ends at the first
// failing application or at end-of-input.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(s State) Result[[]T] {
		res := []T{}
		input := s
		for {
			if input.IsEmpty() {
				return Done(input, res)
			}
			r := p(input)
			if !r.IsDone() {
				return Done(input, res)
			}
			if r.State().Len() == input.Len() {
				return Fail[[]T]()
			}
			res = append(res, r.Value())
			input = r.State()
		}
	}
}

// SeparatedNonEmpty parses one or more items separated by sep. It fails
// only when the first item fails or does not consume; afterwards any
// failing or non-advancing separator or item ends the list, rolling back to
// before the separator so that a trailing separator is left unconsumed.
func SeparatedNonEmpty[S any, T any](sep Parser[S], item Parser[T]) Parser[[]T] {
	return func(s State) Result[[]T] {
		first := item(s)
		if !first.IsDone() {
			return Fail[[]T]()
		}
		if first.State().Len() == s.Len() {
			return Fail[[]T]()
		}
		res := []T{first.Value()}
		input := first.State()
		for {
			rs := sep(input)
			if !rs.IsDone() || rs.State().Len() == input.Len() {
				break
			}
			ri := item(rs.State())
			if !ri.IsDone() || ri.State().Len() == rs.State().Len() {
				break
			}
			res = append(res, ri.Value())
			input = ri.State()
		}
		return Done(input, res)
	}
}

// SeparatedList is SeparatedNonEmpty with zero items allowed.
func SeparatedList[S any, T any](sep Parser[S], item Parser[T]) Parser[[]T] {
	nonempty := SeparatedNonEmpty(sep, item)
	return func(s State) Result[[]T] {
		r := nonempty(s)
		if !r.IsDone() {
			return Done(s, []T{})
		}
		return r
	}
}

// Alt tries the alternatives strictly left to right, each from the same
// original State, and returns the first success. It fails only when every
// alternative fails. Alternatives must be ordered so that no earlier one
// can wrongly prefix-match input meant for a later one; per-branch value
// transforms are written with Map at the call site.
func Alt[T any](alternatives ...Parser[T]) Parser[T] {
	return func(s State) Result[T] {
		for _, p := range alternatives {
			r := p(s)
			if r.IsDone() {
				return r
			}
		}
		return Fail[T]()
	}
}

// Pair, Triple, and Quad are the values of the Seq combinators.
type Pair[A any, B any] struct {
	First  A
	Second B
}

type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

type Quad[A any, B any, C any, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Seq2 sequences two parsers, threading the State, and fails at the first
// sub-failure. Sides whose value is semantically empty are discarded by the
// caller with Preceded or Terminated.
func Seq2[A any, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(s State) Result[Pair[A, B]] {
		ra := a(s)
		if !ra.IsDone() {
			return Fail[Pair[A, B]]()
		}
		rb := b(ra.State())
		if !rb.IsDone() {
			return Fail[Pair[A, B]]()
		}
		return Done(rb.State(), Pair[A, B]{First: ra.Value(), Second: rb.Value()})
	}
}

func Seq3[A any, B any, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return func(s State) Result[Triple[A, B, C]] {
		rab := Seq2(a, b)(s)
		if !rab.IsDone() {
			return Fail[Triple[A, B, C]]()
		}
		rc := c(rab.State())
		if !rc.IsDone() {
			return Fail[Triple[A, B, C]]()
		}
		v := rab.Value()
		return Done(rc.State(), Triple[A, B, C]{First: v.First, Second: v.Second, Third: rc.Value()})
	}
}

func Seq4[A any, B any, C any, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Quad[A, B, C, D]] {
	return func(s State) Result[Quad[A, B, C, D]] {
		rabc := Seq3(a, b, c)(s)
		if !rabc.IsDone() {
			return Fail[Quad[A, B, C, D]]()
		}
		rd := d(rabc.State())
		if !rd.IsDone() {
			return Fail[Quad[A, B, C, D]]()
		}
		v := rabc.Value()
		return Done(rd.State(), Quad[A, B, C, D]{First: v.First, Second: v.Second, Third: v.Third, Fourth: rd.Value()})
	}
}

// Switch parses a discriminant and dispatches to the branch keyed by its
// value. A discriminant value with no branch, and a failing selected
// branch, both fail.
func Switch[D comparable, T any](disc Parser[D], branches map[D]Parser[T]) Parser[T] {
	return func(s State) Result[T] {
		r := disc(s)
		if !r.IsDone() {
			return Fail[T]()
		}
		branch, ok := branches[r.Value()]
		if !ok {
			return Fail[T]()
		}
		return branch(r.State())
	}
}

// Value always succeeds without consuming input, producing the given
// constant. Used to inject fixed values into a sequence's result.
func Value[T any](v T) Parser[T] {
	return func(s State) Result[T] {
		return Done(s, v)
	}
}

// Epsilon always succeeds with an empty value and no consumption.
func Epsilon() Parser[string] {
	return Value("")
}

// WithSpan pairs a parsed value with the span of buffer it was parsed from.
type WithSpan[T any] struct {
	Value T
	Span  Span
}

// Spanned records the byte span consumed by p alongside its value. The
// span holds copies of the offsets only.
func Spanned[T any](p Parser[T]) Parser[WithSpan[T]] {
	return func(s State) Result[WithSpan[T]] {
		r := p(s)
		if !r.IsDone() {
			return Fail[WithSpan[T]]()
		}
		return Done(r.State(), WithSpan[T]{
			Value: r.Value(),
			Span:  Span{Lo: s.Offset(), Hi: r.State().Offset()},
		})
	}
}
