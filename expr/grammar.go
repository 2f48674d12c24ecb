// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/parsek"
)

// tok matches one token of the given kind and produces it.
func tok(kind Kind) parsek.Parser[Token] {
	return parsek.Take(func(t parsek.Token) (Token, error) {
		tt := t.(Token)
		if tt.Kind != kind {
			return Token{}, fmt.Errorf("expected %s", kind)
		}
		return tt, nil
	})
}

// intLit matches an integer token and parses its value.
func intLit() parsek.Parser[Expr] {
	return parsek.Take(func(t parsek.Token) (Expr, error) {
		tt := t.(Token)
		if tt.Kind != Int {
			return nil, fmt.Errorf("expected %s", Int)
		}
		v, err := strconv.ParseInt(tt.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("integer literal out of range: %s", tt.Text)
		}
		return &IntLit{Value: v, At: tt.Start}, nil
	})
}

// precOf returns an infix operator's binding strength, 0 for non-operators.
func precOf(k Kind) int {
	switch k {
	case Plus, Minus:
		return 1
	case Star, Slash:
		return 2
	}
	return 0
}

// newGrammar builds the file and expression rules. The knot of mutually
// recursive rules is tied with Defer so construction terminates; the
// returned parsers are persistent values, built once and shared by every
// parse.
func newGrammar() (parsek.Parser[*File], parsek.Parser[Expr]) {
	var expression parsek.Parser[Expr]
	exprRef := parsek.Defer(func() parsek.Parser[Expr] { return expression })

	ref := parsek.Map(tok(Ident), func(t Token) Expr {
		return &Ref{Name: t.Text, At: t.Start}
	})

	group := parsek.Between(tok(LParen), exprRef, tok(RParen))

	// A call shares its identifier prefix with a plain reference; the
	// choice is settled by peeking the opening parenthesis, and Try keeps
	// the identifier uncommitted until then. Past the parenthesis the
	// grammar is committed: a malformed argument list is a hard error,
	// not a fallthrough to Ref.
	callHeader := parsek.Try(parsek.Bind(tok(Ident), func(fn Token) parsek.Parser[Token] {
		return parsek.Then(parsek.Lookahead(tok(LParen)), parsek.Return(fn))
	}))
	call := parsek.Bind(callHeader, func(fn Token) parsek.Parser[Expr] {
		args := parsek.Between(tok(LParen), parsek.SepBy(exprRef, tok(Comma)), tok(RParen))
		return parsek.Map(args, func(list []Expr) Expr {
			return &Call{Fn: fn.Text, Args: list, At: fn.Start}
		})
	})

	// Backtracking keeps the last alternative's message, so intLit sits
	// last: "expected integer" is the report for a token no atom starts
	// with, and an out-of-range literal keeps its own message.
	atom := parsek.OneOf(call, ref, group, intLit())

	var unary parsek.Parser[Expr]
	unaryRef := parsek.Defer(func() parsek.Parser[Expr] { return unary })
	unary = parsek.OneOf(
		parsek.Bind(tok(Minus), func(op Token) parsek.Parser[Expr] {
			return parsek.Map(unaryRef, func(operand Expr) Expr {
				return &Unary{Op: Minus, Operand: operand, At: op.Start}
			})
		}),
		atom,
	)

	// Precedence climbing: peek the next operator and extend the left
	// operand while the operator binds at least as tightly as min. The
	// peeked token is consumed only after the decision, so an expression
	// ends cleanly at any non-operator without an error.
	binOp := parsek.Take(func(t parsek.Token) (Token, error) {
		tt := t.(Token)
		if precOf(tt.Kind) == 0 {
			return Token{}, fmt.Errorf("expected operator")
		}
		return tt, nil
	})
	var climb func(lhs Expr, min int) parsek.Parser[Expr]
	var operand func(min int) parsek.Parser[Expr]
	climb = func(lhs Expr, min int) parsek.Parser[Expr] {
		return parsek.Bind(parsek.Optional(parsek.Lookahead(binOp)), func(m parsek.Maybe[Token]) parsek.Parser[Expr] {
			op, ok := m.Get()
			if !ok || precOf(op.Kind) < min {
				return parsek.Return(lhs)
			}
			// Left associativity: the right operand climbs only
			// strictly-tighter operators.
			return parsek.Bind(parsek.Then(binOp, operand(precOf(op.Kind)+1)), func(rhs Expr) parsek.Parser[Expr] {
				return climb(&Binary{Op: op.Kind, Left: lhs, Right: rhs, At: op.Start}, min)
			})
		})
	}
	operand = func(min int) parsek.Parser[Expr] {
		return parsek.Bind(unaryRef, func(lhs Expr) parsek.Parser[Expr] {
			return climb(lhs, min)
		})
	}
	sum := operand(1)

	// let is committed by its keyword: once read, the binding must
	// complete, and failures past it report at their own positions.
	letRule := parsek.Bind(tok(Let), func(kw Token) parsek.Parser[Expr] {
		return parsek.Bind(tok(Ident), func(name Token) parsek.Parser[Expr] {
			return parsek.Then(tok(Eq), parsek.Bind(exprRef, func(val Expr) parsek.Parser[Expr] {
				return parsek.Then(tok(In), parsek.Map(exprRef, func(body Expr) Expr {
					return &Let{Name: name.Text, Value: val, Body: body, At: kw.Start}
				}))
			}))
		})
	})

	expression = parsek.Alt(letRule, sum)

	file := parsek.Bind(expression, func(e Expr) parsek.Parser[*File] {
		return parsek.Map(parsek.End(), func(tr parsek.Trivia) *File {
			trailing, _ := tr.([]Comment)
			return &File{Expr: e, Trailing: trailing}
		})
	})
	return file, expression
}

var fileParser, bareExpr = newGrammar()

var exprParser = parsek.Bind(bareExpr, func(e Expr) parsek.Parser[Expr] {
	return parsek.Map(parsek.End(), func(parsek.Trivia) Expr { return e })
})

// ParseFile parses src as one expression followed by end of input and
// returns it with any trailing comments. The error, when non-nil, is a
// [parsek.ParseError] anchored at the offending source position.
func ParseFile(src string) (*File, error) {
	return parsek.Parse(Stream(src), fileParser)
}

// ParseExpr parses src as one expression spanning the whole input.
func ParseExpr(src string) (Expr, error) {
	return parsek.Parse(Stream(src), exprParser)
}
