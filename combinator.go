// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

// Maybe is an optional value: a value of type A, or nothing. It is the
// result type of [Optional].
type Maybe[A any] struct {
	value   A
	present bool
}

// Just returns a Maybe holding v.
func Just[A any](v A) Maybe[A] {
	return Maybe[A]{value: v, present: true}
}

// Nothing returns the empty Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Ok reports whether a value is present.
func (m Maybe[A]) Ok() bool {
	return m.present
}

// Get returns the held value and whether one is present.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.present
}

// Optional runs p and wraps its result in a [Maybe], producing Nothing
// when p fails without consuming. Optional is Alt(Map(p, Just),
// Return(Nothing)) and inherits Alt's backtracking rule: a failure of p
// that consumed input is a real error and propagates unchanged.
func Optional[A any](p Parser[A]) Parser[Maybe[A]] {
	return Alt(Map(p, Just[A]), Return(Nothing[A]()))
}

// Many applies p zero or more times, collecting results in order until
// an application of p fails without consuming. A failure of p that did
// consume input propagates as a hard failure out of Many entirely:
// partial matches are real errors, not the end of the repetition.
//
// p must consume input on success. Many does not detect a zero-width
// success; repeating one loops forever and is a grammar bug.
func Many[A any](p Parser[A]) Parser[[]A] {
	opt := Optional(p)
	var loop func(acc []A) Parser[[]A]
	loop = func(acc []A) Parser[[]A] {
		return Bind(opt, func(m Maybe[A]) Parser[[]A] {
			v, ok := m.Get()
			if !ok {
				return Return(acc)
			}
			return loop(append(acc, v))
		})
	}
	return loop(nil)
}

// Many1 applies p one or more times: p followed by Many(p).
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Bind(p, func(first A) Parser[[]A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// End matches end of input and yields the stream's trailing trivia, for
// callers that need the source content after the last token.
func End() Parser[Trivia] {
	return Eof(func(tr Trivia) Trivia {
		return tr
	})
}

// OneOf tries each parser in order, applying [Alt]'s backtracking rule
// at every step: the first parser to succeed, or to fail having
// consumed, settles the choice.
func OneOf[A any](first Parser[A], rest ...Parser[A]) Parser[A] {
	if len(rest) == 0 {
		return first
	}
	return Alt(first, OneOf(rest[0], rest[1:]...))
}

// SepBy1 parses one or more occurrences of p separated by sep, keeping
// the p results. A separator with no following p is a consuming failure.
func SepBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Bind(p, func(first A) Parser[[]A] {
		return Map(Many(Then(sep, p)), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// SepBy parses zero or more occurrences of p separated by sep.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Map(Optional(SepBy1(p, sep)), func(m Maybe[[]A]) []A {
		v, ok := m.Get()
		if !ok {
			return nil
		}
		return v
	})
}

// Between parses open, then p, then close, producing p's result.
func Between[L, A, R any](open Parser[L], p Parser[A], close Parser[R]) Parser[A] {
	return Then(open, Bind(p, func(v A) Parser[A] {
		return Map(close, func(R) A {
			return v
		})
	}))
}
