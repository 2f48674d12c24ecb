// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parsek provides a trampolined parser-combinator execution
// engine over abstract token streams.
//
// The core type [Parser] is an immutable description of a parse
// computation: a small instruction set covering token consumption,
// ordered choice with commit-on-consume backtracking, lookahead, lazy
// recursion and sequencing. [Run] executes a Parser against a
// [TokenStream] with an explicit frame stack, so grammar depth and input
// length never grow the goroutine stack, and sequencing is routed
// through a type-aligned continuation queue, so long chains cost O(1)
// amortized per step instead of degrading quadratically.
//
// # Design Philosophy
//
// parsek provides:
//   - A closed, defunctionalized instruction set (Reynolds 1972) rather
//     than closure-based recursive descent
//   - One effect only (token consumption with backtracking), specialized
//     and optimized for that single use; it is not a general effect
//     system
//   - Persistent values throughout: parsers, queues and stream cursors
//     are never mutated, so grammars are built once and run many times,
//     concurrently if desired
//
// # Token Streams
//
// The engine consumes tokens through an immutable cursor contract and
// never touches source text itself:
//
//   - [TokenStream]: cursor; Step is referentially transparent and O(1)
//     to copy
//   - [Step]: marker-interface sum of the three step outcomes
//   - [StepToken]: one token, the position after it, and the next cursor
//   - [StepEOF]: end of input plus trailing [Trivia]
//   - [StepError]: unrecoverable tokenization failure; always fatal
//   - [Token]: opaque to the engine except for Pos, which anchors
//     rejection errors
//   - [Position]: line/column pair threaded from the stream into results
//
// # Instructions
//
// Primitive constructors, one per instruction:
//
//   - [Take]: consume one token if the callback accepts it
//   - [Eof]: succeed only at end of input, observing trailing trivia
//   - [FailAt]: immediate positioned failure
//   - [Alt]: ordered choice, backtracking only on non-consuming failure
//   - [Try]: make a consuming failure backtrackable (parsec's try)
//   - [Lookahead]: run a parser and rewind the stream either way
//   - [Defer]: lazy construction for recursive grammar rules, forced
//     at most once
//   - [Return]: lift a value
//
// Sequencing:
//
//   - [Bind]: feed a parser's result to a function producing the next
//     parser
//   - [Map]: transform the result with a pure function
//   - [Then]: sequence, discarding the first result
//
// Sequencing never nests: a chain of Binds flattens into one base
// computation plus one continuation queue, append O(1), pop amortized
// O(1) ("Reflection without Remorse", van der Ploeg and Kiselyov 2014).
//
// # Backtracking Protocol
//
// The consumed flag is reset at each choice point and set by the first
// token acceptance after it. [Alt] retries its alternative only when the
// failed branch consumed nothing; a branch that consumed commits the
// choice and the failure propagates. [Try] rolls the flag back after a
// failure so enclosing choices treat the branch as non-consuming, and
// [Lookahead] rewinds the stream and flag no matter the outcome.
// Rejected tokens never count as consumed: examining a token and
// refusing it leaves the choice point open.
//
// Failures are ordinary values, never panics. Tokenization errors are
// the one exception to the backtracking rules: a [StepError] terminates
// the run immediately past every pending alternative, since a broken
// stream invalidates saved cursors.
//
// # Derived Combinators
//
//   - [Many], [Many1]: repetition; consuming failures propagate as hard
//     errors
//   - [Optional]: optionality via [Maybe]
//   - [OneOf]: n-ary ordered choice
//   - [SepBy], [SepBy1]: separated repetition
//   - [Between]: delimited content
//   - [End]: end of input, yielding trailing trivia
//   - [Maybe], [Just], [Nothing]: the option type used by Optional
//
// # Execution
//
//   - [Run]: full outcome as a [Result] (value or positioned error, end
//     position, consumed flag, remaining stream)
//   - [Parse]: collapsed outcome, (value, error) with a [ParseError]
//
// # Example
//
//	kw := func(w string) parsek.Parser[string] {
//		return parsek.Take(func(tok parsek.Token) (string, error) {
//			if t, ok := tok.(word); ok && t.text == w {
//				return w, nil
//			}
//			return "", fmt.Errorf("expected %q", w)
//		})
//	}
//
//	greeting := parsek.Bind(kw("hello"), func(string) parsek.Parser[string] {
//		return kw("world")
//	})
//
//	result := parsek.Run(stream, greeting)
//	// result.Ok() == true, result.Value == "world"
package parsek
