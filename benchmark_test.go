// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek_test

import (
	"testing"

	"code.hybscloud.com/parsek"
)

// BenchmarkRunReturn measures pure Run allocation (baseline).
func BenchmarkRunReturn(b *testing.B) {
	var s parsek.TokenStream = stream()
	p := parsek.Return(42)
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkRunMap measures a mapped run.
func BenchmarkRunMap(b *testing.B) {
	var s parsek.TokenStream = stream()
	p := parsek.Map(parsek.Return(21), func(x int) int { return x * 2 })
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkBindChainBuild measures chain construction, the operation the
// continuation queue keeps O(1) per link.
func BenchmarkBindChainBuild(b *testing.B) {
	inc := func(x int) parsek.Parser[int] { return parsek.Return(x + 1) }
	for b.Loop() {
		p := parsek.Return(0)
		for range 100 {
			p = parsek.Bind(p, inc)
		}
		_ = p
	}
}

// BenchmarkBindChainRun measures evaluation of a prebuilt 100-link chain.
func BenchmarkBindChainRun(b *testing.B) {
	var s parsek.TokenStream = stream()
	p := parsek.Return(0)
	for range 100 {
		p = parsek.Bind(p, func(x int) parsek.Parser[int] {
			return parsek.Return(x + 1)
		})
	}
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkTakeSequence measures a token-consuming sequence.
func BenchmarkTakeSequence(b *testing.B) {
	var s parsek.TokenStream = stream("A", "B")
	p := parsek.Then(accept("A"), accept("B"))
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkMany measures repetition over a 64-token stream.
func BenchmarkMany(b *testing.B) {
	toks := make([]string, 64)
	for i := range toks {
		toks[i] = "A"
	}
	var s parsek.TokenStream = stream(toks...)
	p := parsek.Many(accept("A"))
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkAltBacktrack measures choice resolution with three rejected
// alternatives before the match.
func BenchmarkAltBacktrack(b *testing.B) {
	var s parsek.TokenStream = stream("D")
	p := parsek.OneOf(accept("A"), accept("B"), accept("C"), accept("D"))
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkTryBacktrack measures a consuming attempt rolled back by Try.
func BenchmarkTryBacktrack(b *testing.B) {
	var s parsek.TokenStream = stream("A", "B")
	p := parsek.Alt(
		parsek.Try(parsek.Then(accept("A"), accept("X"))),
		parsek.Return("fallback"),
	)
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}

// BenchmarkLookahead measures a peek followed by the real consumption.
func BenchmarkLookahead(b *testing.B) {
	var s parsek.TokenStream = stream("A")
	p := parsek.Then(parsek.Lookahead(accept("A")), accept("A"))
	for b.Loop() {
		_ = parsek.Run(s, p)
	}
}
