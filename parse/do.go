// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parse

// Binder threads a State through a sequence of parse steps. After any step
// fails, every later Bind is a no-op returning a zero value and the whole
// sequence fails, so partial bindings never escape: the sequence's result
// is only used when all steps succeeded.
type Binder struct {
	state  State
	failed bool
}

// Failed reports whether an earlier step has failed. Steps that branch on
// previously bound values can consult it to avoid acting on zero values.
func (self *Binder) Failed() bool {
	return self.failed
}

// Do builds a parser from a sequence of steps written as ordinary Go
// statements. Inside steps, each Bind call runs one parser and either
// binds its value to a local or is discarded; the function's return value
// combines the bound locals into the result. This is the sequential
// binding form grammar productions are written with:
//
//	parse.Do(func(b *parse.Binder) Item {
//		name := parse.Bind(b, Ident)
//		parse.Bind(b, parse.Punct("!"))
//		body := parse.Bind(b, TokenTree)
//		return Item{Name: name, Body: body}
//	})
func Do[T any](steps func(b *Binder) T) Parser[T] {
	return func(s State) Result[T] {
		b := Binder{state: s}
		v := steps(&b)
		if b.failed {
			return Fail[T]()
		}
		return Done(b.state, v)
	}
}

// Bind runs one step of a Do sequence, advancing the Binder's State on
// success. On failure, or after any earlier failure, it returns the zero
// value and marks the sequence failed.
func Bind[T any](b *Binder, p Parser[T]) T {
	var zero T
	if b.failed {
		return zero
	}
	r := p(b.state)
	if !r.IsDone() {
		b.failed = true
		return zero
	}
	b.state = r.State()
	return r.Value()
}
