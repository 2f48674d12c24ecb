// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expr is a small arithmetic language built on parsek, covering
// the engine's whole surface end to end: a lazy lexer implementing the
// token-stream contract, a backtracking grammar, an evaluator, and JSON
// rendering of the syntax tree.
//
// The language is integer expressions with let bindings and a few
// builtin functions:
//
//	let x = 2 in min(x*3, abs(-7)) -- comments run to end of line
//
// Infix operators are + - * / with the usual precedence, unary minus
// binds tighter than either, and a name followed by a parenthesized
// argument list is a call.
//
// # Lexing
//
// [Stream] returns an immutable, lazily evaluated cursor: each position
// scans its token on first use and memoizes the outcome, so the
// backtracking engine can re-step freely at O(1) and a lexical error
// surfaces only if the parse actually reaches it. Line comments are not
// tokens; they attach to the next token as [Token].Leading, or arrive as
// the []Comment end-of-input trivia after the last token.
//
// # Parsing
//
// The grammar leans on each engine primitive where it is the natural
// tool: [parsek.Lookahead] peeks the next operator for precedence
// climbing, [parsek.Try] keeps an identifier uncommitted until the
// opening parenthesis decides call versus reference, [parsek.Defer] ties
// the recursive knot, and let is deliberately committed by its keyword so
// errors inside a binding report at their own positions. [ParseFile]
// additionally requires end of input and captures the trailing comments.
package expr
