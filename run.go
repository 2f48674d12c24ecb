// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

// state is one backtracking snapshot: how far the run has advanced and
// whether any token was consumed since the last checkpoint. States are
// plain values; saving one is a struct copy.
type state struct {
	consumed bool
	pos      Position
	stream   TokenStream
}

// frame is the interface for the machine's explicit stack, the
// call-stack substitute that keeps evaluation depth off the goroutine
// stack. Frames form a parent-linked chain and a nil frame is the
// bottom; no cycles are possible since frames only ever point to their
// parent. Dispatch uses type switches; frame is a pure marker interface.
type frame interface {
	frame() // unexported marker method
}

// altFrame is a pending alternative: if the branch below fails without
// consuming, the machine restores saved and runs alt.
type altFrame struct {
	parent frame
	saved  state
	alt    instr
}

func (*altFrame) frame() {}

// tryFrame restores backtrack-eligibility: a failure below it continues
// upward with the consumed flag rolled back to the saved snapshot's.
type tryFrame struct {
	parent frame
	saved  state
}

func (*tryFrame) frame() {}

// lookFrame rewinds to the saved snapshot on success and failure alike.
type lookFrame struct {
	parent frame
	saved  state
}

func (*lookFrame) frame() {}

// bindsFrame holds the continuations waiting on the value of the
// computation below it.
type bindsFrame struct {
	parent frame
	q      *contQueue
}

func (*bindsFrame) frame() {}

// Result is the complete outcome of [Run].
//
// Err is nil exactly when the run succeeded. On success, Pos is the
// position after the last consumed token and Rest is the remaining
// stream, kept for diagnostics or incremental reuse. On failure, Pos
// mirrors Err.Pos and Rest is the stream at the failure point; Rest is
// nil only for tokenization failures whose [StepError] carried no
// cursor. Consumed reports whether any token was read since the last
// backtracking checkpoint, which for a completed run means since the
// outermost unfinished choice point.
type Result[A any] struct {
	Value    A
	Err      *ParseError
	Pos      Position
	Consumed bool
	Rest     TokenStream
}

// Ok reports whether the run succeeded.
func (r Result[A]) Ok() bool {
	return r.Err == nil
}

// rawResult is the erased outcome produced by the eval loop.
type rawResult struct {
	val      Erased
	err      *ParseError
	pos      Position
	consumed bool
	rest     TokenStream
}

// Run executes p against the stream s and returns the complete outcome.
//
// Run is iterative. Grammar depth and input length grow an explicit
// frame chain on the heap, never the goroutine stack, so deeply nested
// combinators and long sequencing chains evaluate in constant stack
// space. A run is a pure function of (s, p): nothing is shared between
// runs, and concurrent runs of one Parser value over independent streams
// need no locking.
func Run[A any](s TokenStream, p Parser[A]) Result[A] {
	if p.i == nil {
		panic("parsek: Run of zero Parser")
	}
	r := eval(s, p.i)
	out := Result[A]{Err: r.err, Pos: r.pos, Consumed: r.consumed, Rest: r.rest}
	if r.err == nil {
		out.Value = r.val.(A)
	}
	return out
}

// Parse runs p against s and collapses the outcome to a value or an
// error. The error, when non-nil, is a [ParseError].
func Parse[A any](s TokenStream, p Parser[A]) (A, error) {
	r := Run(s, p)
	if r.Err != nil {
		var zero A
		return zero, r.Err
	}
	return r.Value, nil
}

// eval is the trampoline: an iterative machine over (instruction, stack,
// state) triples implementing the backtracking protocol.
//
//   - altInstr pushes an altFrame and runs the left branch with the
//     consumed flag cleared, so the flag measures exactly "consumed
//     since this choice point"; the enclosing attempt's own flag is
//     preserved in the frames above.
//   - doneInstr and failInstr resolve against the top frame, reusing the
//     same instruction value while unwinding, so resolution itself
//     allocates nothing.
//   - a failure reaching an altFrame backtracks only if nothing was
//     consumed; a tryFrame rolls the flag back so outer alternatives see
//     the branch as non-consuming; a lookFrame always rewinds.
//   - a tokenization error aborts the run directly, bypassing every
//     frame: after a broken stream no saved cursor can be trusted.
func eval(s TokenStream, root instr) rawResult {
	var (
		stk frame
		st  = state{stream: s}
		cur = root
	)
	for {
		switch i := cur.(type) {
		case *doneInstr:
			switch f := stk.(type) {
			case nil:
				return rawResult{val: i.v, pos: st.pos, consumed: st.consumed, rest: st.stream}
			case *altFrame:
				stk = f.parent
			case *tryFrame:
				stk = f.parent
			case *lookFrame:
				st = f.saved
				stk = f.parent
			case *bindsFrame:
				k, rest := f.q.popFront()
				if rest == nil {
					stk = f.parent
				} else {
					stk = &bindsFrame{parent: f.parent, q: rest}
				}
				cur = k(i.v)
			default:
				panic("parsek: unknown frame type")
			}
		case *failInstr:
			switch f := stk.(type) {
			case nil:
				return rawResult{
					err:      &ParseError{Pos: i.pos, Msg: i.msg},
					pos:      i.pos,
					consumed: st.consumed,
					rest:     st.stream,
				}
			case *altFrame:
				if st.consumed {
					// Committed: the alternative is skipped.
					stk = f.parent
				} else {
					st = f.saved
					stk = f.parent
					cur = f.alt
				}
			case *tryFrame:
				st.consumed = f.saved.consumed
				stk = f.parent
			case *lookFrame:
				st = f.saved
				stk = f.parent
			case *bindsFrame:
				// No continuation can run after a failure.
				stk = f.parent
			default:
				panic("parsek: unknown frame type")
			}
		case *takeInstr:
			switch step := st.stream.Step().(type) {
			case StepToken:
				v, err := i.f(step.Token)
				if err != nil {
					cur = &failInstr{pos: step.Token.Pos(), msg: err.Error()}
				} else {
					st = state{consumed: true, pos: step.Next, stream: step.Rest}
					cur = &doneInstr{v: v}
				}
			case StepEOF:
				cur = &failInstr{pos: step.Pos, msg: "unexpected end of input"}
			case StepError:
				return rawResult{
					err:      &ParseError{Pos: step.Pos, Msg: step.Msg},
					pos:      step.Pos,
					consumed: st.consumed,
					rest:     step.Rest,
				}
			default:
				panic("parsek: unknown step type")
			}
		case *eofInstr:
			switch step := st.stream.Step().(type) {
			case StepToken:
				cur = &failInstr{pos: step.Token.Pos(), msg: "expected end of input"}
			case StepEOF:
				st.consumed = true
				st.pos = step.Pos
				cur = &doneInstr{v: i.f(step.Trivia)}
			case StepError:
				return rawResult{
					err:      &ParseError{Pos: step.Pos, Msg: step.Msg},
					pos:      step.Pos,
					consumed: st.consumed,
					rest:     step.Rest,
				}
			default:
				panic("parsek: unknown step type")
			}
		case *altInstr:
			saved := st
			saved.consumed = false
			stk = &altFrame{parent: stk, saved: saved, alt: i.right}
			st.consumed = false
			cur = i.left
		case *tryInstr:
			stk = &tryFrame{parent: stk, saved: st}
			cur = i.p
		case *lookInstr:
			stk = &lookFrame{parent: stk, saved: st}
			cur = i.p
		case *bindInstr:
			stk = &bindsFrame{parent: stk, q: i.q}
			cur = i.p
		case *deferInstr:
			cur = i.force()
		default:
			panic("parsek: unknown instruction")
		}
	}
}
