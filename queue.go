// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

// link is one continuation in a continuation queue: it maps the previous
// step's result to the next instruction. Links are type-aligned (each
// one's output type is the next one's input type) by construction in
// [Bind], [Map] and [Then]; the runtime representation is erased, in the
// manner of the type-aligned sequences of "Reflection without Remorse"
// (van der Ploeg and Kiselyov, 2014).
type link func(Erased) instr

// contQueue is a persistent type-aligned queue of continuations.
//
// A queue is either a leaf holding one link or a pairing node joining two
// sub-queues in order. Appending builds a single node and never walks its
// operands, so n appends cost O(n) but may lean arbitrarily far left.
// popFront re-associates the left spine rightward as it descends and
// hands the re-associated remainder back to the caller, so every node
// built by an append is rotated at most once and any sequence of n
// appends and pops totals O(n) work: O(1) amortized per operation.
//
// Nodes are never mutated after construction. Parsers are persistent
// values; popFront builds fresh nodes for the remainder and leaves every
// shared queue intact.
type contQueue struct {
	k    link       // leaf: the continuation, nil in nodes
	l, r *contQueue // node: ordered sub-queues, nil in leaves
}

// leafQueue returns the queue holding exactly k.
func leafQueue(k link) *contQueue {
	return &contQueue{k: k}
}

// appendQueue concatenates two queues in O(1) without traversing either
// operand.
func appendQueue(a, b *contQueue) *contQueue {
	return &contQueue{l: a, r: b}
}

// popFront removes the logically-first continuation, returning it along
// with the remaining queue; the remainder is nil when the queue held
// exactly one link.
//
// Descending the left spine, each node's right subtree is pushed onto the
// front of the accumulated remainder, so the remainder comes back
// right-leaning and later pops reach their leaves in O(1). A single pop
// may touch O(depth) nodes; the amortized cost stays constant because
// each touched node was built by one append and is never walked again.
func (q *contQueue) popFront() (link, *contQueue) {
	var rest *contQueue
	for q.k == nil {
		if rest == nil {
			rest = q.r
		} else {
			rest = &contQueue{l: q.r, r: rest}
		}
		q = q.l
	}
	return q.k, rest
}
