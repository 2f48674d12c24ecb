// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

// Sequencing operations for parsers.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations that skip the
// intermediate parser a Bind encoding would allocate.

// bindWith sequences the instruction p with the erased continuation k.
// When p is already a sequencing node the link is appended to its queue,
// preserving the invariant that a bindInstr never nests in its own base;
// otherwise a fresh single-link queue is started. Both paths are O(1).
func bindWith(p instr, k link) instr {
	if b, ok := p.(*bindInstr); ok {
		return &bindInstr{p: b.p, q: appendQueue(b.q, leafQueue(k))}
	}
	return &bindInstr{p: p, q: leafQueue(k)}
}

// Bind sequences two parsers (monadic bind). It runs p, then passes the
// result to f to get the parser that continues the computation.
//
// Chained Binds flatten into one base computation plus one continuation
// queue rather than nesting, so chains built step by step cost O(1) per
// step instead of re-walking what was queued before. f is never called
// during construction; it runs when the machine resolves p's value.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Parser[B]{i: bindWith(p.i, func(v Erased) instr {
		return f(v.(A)).i
	})}
}

// Map applies a pure function to the result of a parser.
//
// Mapping over an already-computed value applies f at construction time,
// and mapping over an immediate failure is that failure unchanged; in
// every other case Map appends a pure link to the continuation queue
// exactly as [Bind] does, without the intermediate parser value.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	switch i := p.i.(type) {
	case *doneInstr:
		return Return(f(i.v.(A)))
	case *failInstr:
		return Parser[B]{i: i}
	}
	return Parser[B]{i: bindWith(p.i, func(v Erased) instr {
		return &doneInstr{v: f(v.(A))}
	})}
}

// Then sequences two parsers, discarding the first result. This is more
// convenient than Bind when the second parser does not depend on the
// first result, and avoids capturing a transformation closure.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Parser[B]{i: bindWith(p.i, func(Erased) instr {
		return q.i
	})}
}
