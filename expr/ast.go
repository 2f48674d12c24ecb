// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import "code.hybscloud.com/parsek"

// Expr is the interface for expression nodes. The node set is closed;
// consumers dispatch with type switches.
type Expr interface {
	expr() // unexported marker method
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	At    parsek.Position
}

func (*IntLit) expr() {}

// Ref is a reference to a let-bound name.
type Ref struct {
	Name string
	At   parsek.Position
}

func (*Ref) expr() {}

// Unary is a prefix operator application.
type Unary struct {
	Op      Kind
	Operand Expr
	At      parsek.Position
}

func (*Unary) expr() {}

// Binary is an infix operator application. At is the operator's position.
type Binary struct {
	Op    Kind
	Left  Expr
	Right Expr
	At    parsek.Position
}

func (*Binary) expr() {}

// Let binds Name to Value inside Body.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
	At    parsek.Position
}

func (*Let) expr() {}

// Call applies a builtin function to arguments.
type Call struct {
	Fn   string
	Args []Expr
	At   parsek.Position
}

func (*Call) expr() {}

// File is a whole source file: one expression plus the comments after it.
type File struct {
	Expr     Expr
	Trailing []Comment
}
