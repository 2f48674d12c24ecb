// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

import "sync"

// Erased represents a type-erased value in the instruction tree and the
// continuation queue. Instructions process heterogeneous value types
// through a homogeneous evaluation pipeline; concrete types are recovered
// via type assertions at the construction boundaries, which are the only
// places that know them.
type Erased = any

// ParseError is a failure message anchored at a position.
type ParseError struct {
	Pos Position
	Msg string
}

// Error formats the failure as "line:column: message".
func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// instr is the interface for parser instructions, the defunctionalized
// form (Reynolds 1972) of a suspended parse computation. The instruction
// set is closed; the machine dispatches with type switches, so instr is a
// pure marker interface.
type instr interface {
	instr() // unexported marker method
}

// takeInstr consumes one token if its callback accepts it.
type takeInstr struct {
	f func(Token) (Erased, error)
}

func (*takeInstr) instr() {}

// eofInstr succeeds only when the stream is exhausted.
type eofInstr struct {
	f func(Trivia) Erased
}

func (*eofInstr) instr() {}

// failInstr is an immediate failure anchored at a position. It doubles as
// the machine's failure resolution carrier.
type failInstr struct {
	pos Position
	msg string
}

func (*failInstr) instr() {}

// altInstr is ordered choice.
type altInstr struct {
	left  instr
	right instr
}

func (*altInstr) instr() {}

// tryInstr marks its operand's failures as non-consuming so that an
// enclosing choice may still backtrack.
type tryInstr struct {
	p instr
}

func (*tryInstr) instr() {}

// lookInstr runs its operand and rewinds the stream whatever the outcome.
type lookInstr struct {
	p instr
}

func (*lookInstr) instr() {}

// deferInstr delays construction of its operand until the machine first
// reaches it. The thunk runs at most once and the result is memoized.
type deferInstr struct {
	once sync.Once
	f    func() instr
	p    instr
}

func (*deferInstr) instr() {}

func (d *deferInstr) force() instr {
	d.once.Do(func() {
		d.p = d.f()
		d.f = nil
	})
	return d.p
}

// doneInstr is a computed value with no stream interaction. It doubles as
// the machine's success resolution carrier.
type doneInstr struct {
	v Erased
}

func (*doneInstr) instr() {}

// bindInstr sequences a base computation with a queue of pending
// continuations. It is the only instruction carrying a queue, and its
// base is never itself a bindInstr: sequencing a bindInstr appends to the
// existing queue instead of nesting (see [Bind]), which is what keeps
// long chains O(1) per step.
type bindInstr struct {
	p instr
	q *contQueue
}

func (*bindInstr) instr() {}

// Parser is an immutable description of a parse computation producing a
// value of type A.
//
// Parser values are pure data. Construction performs no stream access,
// and a value may be run many times, shared between concurrent runs and
// embedded in larger parsers freely. The zero Parser is not a valid
// computation; [Run] panics on it.
type Parser[A any] struct {
	i instr
}

// Take consumes one token when f accepts it.
//
// On acceptance the machine advances the stream and marks the attempt as
// consuming. On rejection the attempt fails at the token's start position
// without consuming, so an examined-but-rejected token never commits an
// enclosing [Alt]; the rejection error's text becomes the failure
// message. At end of input Take fails with "unexpected end of input".
func Take[A any](f func(Token) (A, error)) Parser[A] {
	return Parser[A]{i: &takeInstr{f: func(tok Token) (Erased, error) {
		v, err := f(tok)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}}
}

// Eof succeeds only when the stream is exhausted, applying f to the
// stream's trailing trivia. Matching end of input counts as consuming;
// when a token remains, Eof fails at that token's start with "expected
// end of input" and without consuming it.
func Eof[A any](f func(Trivia) A) Parser[A] {
	return Parser[A]{i: &eofInstr{f: func(tr Trivia) Erased {
		return f(tr)
	}}}
}

// FailAt is an immediate failure carrying msg, anchored at pos.
func FailAt[A any](pos Position, msg string) Parser[A] {
	return Parser[A]{i: &failInstr{pos: pos, msg: msg}}
}

// Alt is ordered choice: run a, and if it fails without having consumed
// any token, run b from the same point. A failure of a that consumed
// input is committed and propagates without trying b; [Try] lifts that
// restriction.
func Alt[A any](a, b Parser[A]) Parser[A] {
	return Parser[A]{i: &altInstr{left: a.i, right: b.i}}
}

// Try runs p and, should it fail, reports the failure as non-consuming
// no matter how many tokens p read, so an enclosing [Alt] may still
// backtrack to its alternative. This is the try of the parsec family of
// libraries.
func Try[A any](p Parser[A]) Parser[A] {
	return Parser[A]{i: &tryInstr{p: p.i}}
}

// Lookahead runs p and rewinds the stream whatever the outcome. On
// success the produced value is kept; on failure the failure is kept; in
// both cases the stream state afterward equals the state beforehand, and
// nothing inside p counts as consumed.
func Lookahead[A any](p Parser[A]) Parser[A] {
	return Parser[A]{i: &lookInstr{p: p.i}}
}

// Defer delays construction of a parser until the machine first reaches
// it, breaking the construction cycle of recursive grammar rules. The
// thunk runs at most once and the forced parser is memoized, so a Defer
// value shared by concurrent runs is forced exactly once and forcing is
// idempotent.
func Defer[A any](f func() Parser[A]) Parser[A] {
	return Parser[A]{i: &deferInstr{f: func() instr {
		return f().i
	}}}
}

// Return lifts a value into a parser that produces it without touching
// the stream.
func Return[A any](v A) Parser[A] {
	return Parser[A]{i: &doneInstr{v: v}}
}
