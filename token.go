// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek

import "strconv"

// Position is a source location reported by a token stream. The machine
// never computes positions; it threads the ones the stream reports and
// anchors errors at them. Numbering conventions (0- or 1-based lines and
// columns) belong to the stream implementation, and the zero Position is
// the state of a run before the first step.
type Position struct {
	Line   int
	Column int
}

// String formats the position as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is one lexical token as presented by a [TokenStream]. The machine
// reads only the start position, which anchors rejection errors; all
// other token structure belongs to the grammar.
type Token interface {
	Pos() Position
}

// Trivia is trailing metadata reported by a stream at end of input,
// typically the comments and whitespace after the last token. Its
// concrete shape is owned by the stream implementation; grammars recover
// it by assertion, the same way [Erased] values are recovered at
// continuation boundaries.
type Trivia any

// TokenStream is an immutable cursor into a token source.
//
// Step must be referentially transparent: stepping the same cursor twice
// yields the same outcome, and a cursor issued earlier remains valid
// after later cursors exist. Copying a cursor is O(1) (it is an
// interface value). These properties are what make backtracking sound;
// the machine saves cursors at choice points and re-steps them freely.
type TokenStream interface {
	Step() Step
}

// Step is the outcome of advancing a [TokenStream] by one token. Exactly
// three implementations exist: [StepToken], [StepEOF] and [StepError].
// Dispatch uses type switches, not tags; Step is a pure marker interface.
type Step interface {
	step() // unexported marker method
}

// StepToken delivers one token.
type StepToken struct {
	// Token is the token read, carrying its own start position.
	Token Token

	// Next is the position immediately after the token.
	Next Position

	// Rest is the cursor positioned after the token.
	Rest TokenStream
}

func (StepToken) step() {}

// StepEOF reports an exhausted stream.
type StepEOF struct {
	// Pos is the position of the end of input.
	Pos Position

	// Trivia is the source content after the last token, such as
	// trailing comments.
	Trivia Trivia
}

func (StepEOF) step() {}

// StepError reports an unrecoverable tokenization failure. Reaching one
// terminates the run with a fatal failure that no alternative, Try or
// Lookahead can intercept: a broken token stream invalidates every saved
// cursor, so backtracking past it would be unsound.
type StepError struct {
	// Pos is the position of the failure.
	Pos Position

	// Msg describes the failure.
	Msg string

	// Rest, which may be nil, is attached verbatim to the fatal result.
	Rest TokenStream
}

func (StepError) step() {}
