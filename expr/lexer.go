// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"code.hybscloud.com/parsek"
)

// Stream tokenizes src and returns a cursor positioned before the first
// token. Tokenization is lazy: each cursor scans its token the first time
// it is stepped and memoizes the outcome, so backtracking re-steps are
// O(1) and a lexical error deep in the source surfaces only if the parse
// actually reaches it. Cursors are immutable and safe to share.
func Stream(src string) parsek.TokenStream {
	return &node{src: src, line: 1, col: 1}
}

// node is one memoized cursor of the lazy token stream.
type node struct {
	src       string
	off       int
	line, col int

	once sync.Once
	step parsek.Step
}

func (n *node) Step() parsek.Step {
	n.once.Do(func() {
		n.step = n.scan()
	})
	return n.step
}

func (n *node) scan() parsek.Step {
	s := scanner{src: n.src, off: n.off, line: n.line, col: n.col}
	leading := s.skipBlanks()

	start := s.pos()
	if s.eof() {
		return parsek.StepEOF{Pos: start, Trivia: leading}
	}

	r := s.peek()
	switch {
	case isDigit(r):
		text := s.takeWhile(isDigit)
		if !s.eof() && isIdentRune(s.peek()) {
			return parsek.StepError{Pos: start, Msg: "malformed integer literal"}
		}
		return s.emit(n, Int, text, start, leading)
	case isIdentStart(r):
		text := s.takeWhile(isIdentRune)
		return s.emit(n, LookupKeyword(text), text, start, leading)
	}

	s.advance()
	switch r {
	case '+':
		return s.emit(n, Plus, "+", start, leading)
	case '-':
		return s.emit(n, Minus, "-", start, leading)
	case '*':
		return s.emit(n, Star, "*", start, leading)
	case '/':
		return s.emit(n, Slash, "/", start, leading)
	case '=':
		return s.emit(n, Eq, "=", start, leading)
	case '(':
		return s.emit(n, LParen, "(", start, leading)
	case ')':
		return s.emit(n, RParen, ")", start, leading)
	case ',':
		return s.emit(n, Comma, ",", start, leading)
	}
	return parsek.StepError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", r)}
}

// scanner is the mutable rune cursor scan works with; node stays immutable.
type scanner struct {
	src       string
	off       int
	line, col int
}

func (s *scanner) pos() parsek.Position {
	return parsek.Position{Line: s.line, Column: s.col}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return r
}

func (s *scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// skipBlanks consumes whitespace and line comments, returning the
// comments in source order.
func (s *scanner) skipBlanks() []Comment {
	var comments []Comment
	for !s.eof() {
		r := s.peek()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			s.advance()
			continue
		}
		if strings.HasPrefix(s.src[s.off:], "--") {
			at := s.pos()
			s.advance()
			s.advance()
			from := s.off
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}
			comments = append(comments, Comment{Text: s.src[from:s.off], At: at})
			continue
		}
		break
	}
	return comments
}

func (s *scanner) takeWhile(ok func(rune) bool) string {
	from := s.off
	for !s.eof() && ok(s.peek()) {
		s.advance()
	}
	return s.src[from:s.off]
}

func (s *scanner) emit(n *node, kind Kind, text string, start parsek.Position, leading []Comment) parsek.Step {
	end := s.pos()
	return parsek.StepToken{
		Token: Token{Kind: kind, Text: text, Start: start, End: end, Leading: leading},
		Next:  end,
		Rest:  &node{src: n.src, off: s.off, line: s.line, col: s.col},
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
