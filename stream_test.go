// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsek_test

import (
	"fmt"

	"code.hybscloud.com/parsek"
)

// label is a test token identified by its text.
type label struct {
	text string
	at   parsek.Position
}

func (l label) Pos() parsek.Position { return l.at }

// sliceStream is an immutable cursor over a fixed sequence of labeled
// tokens, one column per token on line 1. Stepping never mutates the
// receiver; advancing returns a fresh cursor value.
type sliceStream struct {
	toks   []string
	i      int
	trivia parsek.Trivia
	errAt  int // index at which stepping reports a lex error, -1 for none
}

func (s sliceStream) at() parsek.Position {
	return parsek.Position{Line: 1, Column: s.i + 1}
}

func (s sliceStream) Step() parsek.Step {
	if s.errAt >= 0 && s.i == s.errAt {
		return parsek.StepError{Pos: s.at(), Msg: "bad token", Rest: nil}
	}
	if s.i >= len(s.toks) {
		return parsek.StepEOF{Pos: s.at(), Trivia: s.trivia}
	}
	rest := s
	rest.i++
	return parsek.StepToken{
		Token: label{text: s.toks[s.i], at: s.at()},
		Next:  rest.at(),
		Rest:  rest,
	}
}

// stream builds a cursor over the given labels.
func stream(labels ...string) sliceStream {
	return sliceStream{toks: labels, errAt: -1}
}

// streamTrivia is stream with trailing metadata reported at end of input.
func streamTrivia(trivia parsek.Trivia, labels ...string) sliceStream {
	return sliceStream{toks: labels, trivia: trivia, errAt: -1}
}

// streamErrAt is stream with a lex error reported at token index i.
func streamErrAt(i int, labels ...string) sliceStream {
	return sliceStream{toks: labels, errAt: i}
}

// accept matches one token with the given text and produces the text.
func accept(want string) parsek.Parser[string] {
	return parsek.Take(func(tok parsek.Token) (string, error) {
		l := tok.(label)
		if l.text != want {
			return "", fmt.Errorf("expected %s", want)
		}
		return l.text, nil
	})
}

// remaining drains a cursor and returns the texts of the tokens left on
// it, for asserting where a run stopped.
func remaining(s parsek.TokenStream) []string {
	var out []string
	for s != nil {
		step, ok := s.Step().(parsek.StepToken)
		if !ok {
			break
		}
		out = append(out, step.Token.(label).text)
		s = step.Rest
	}
	return out
}

// eqStrings compares two string slices.
func eqStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
