// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import "code.hybscloud.com/parsek"

// Kind classifies a token.
type Kind int

const (
	Invalid Kind = iota

	// Literals and names
	Int
	Ident

	// Keywords
	Let
	In

	// Operators and delimiters
	Plus
	Minus
	Star
	Slash
	Eq
	LParen
	RParen
	Comma
)

var kindNames = map[Kind]string{
	Invalid: "Invalid",
	Int:     "integer",
	Ident:   "identifier",
	Let:     "let",
	In:      "in",
	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Eq:      "=",
	LParen:  "(",
	RParen:  ")",
	Comma:   ",",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var keywords = map[string]Kind{
	"let": Let,
	"in":  In,
}

// LookupKeyword maps an identifier's text to its keyword kind, or Ident
// when the text is not a keyword.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Comment is one line comment, without its leading marker.
type Comment struct {
	Text string
	At   parsek.Position
}

// Token is one lexical token. Comments between the previous token and
// this one ride along as Leading; comments after the last token of the
// source are reported as []Comment trivia at end of input instead.
type Token struct {
	Kind    Kind
	Text    string
	Start   parsek.Position
	End     parsek.Position
	Leading []Comment
}

// Pos returns the token's start position.
func (t Token) Pos() parsek.Position {
	return t.Start
}
