// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/parsek/expr"
)

func evalSrc(t *testing.T, src string) (int64, error) {
	t.Helper()
	e, err := expr.ParseExpr(src)
	require.NoError(t, err, "parse %q", src)
	return expr.Eval(e)
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"7-3-2", 2},
		{"10/3", 3},
		{"-10/3", -3},
		{"2*-3", -6},
		{"-(1+2)", -3},
		{"0-9223372036854775807", -9223372036854775807},
	}
	for _, tc := range cases {
		got, err := evalSrc(t, tc.src)
		require.NoError(t, err, "eval %q", tc.src)
		require.Equal(t, tc.want, got, "eval %q", tc.src)
	}
}

func TestEvalLet(t *testing.T) {
	got, err := evalSrc(t, "let x = 2 in x*x")
	require.NoError(t, err)
	require.Equal(t, int64(4), got)
}

func TestEvalLetShadowing(t *testing.T) {
	got, err := evalSrc(t, "let x = 1 in let x = 2 in x")
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	got, err = evalSrc(t, "let x = 1 in let y = x+1 in x+y")
	require.NoError(t, err)
	require.Equal(t, int64(3), got)
}

func TestEvalLetScopeEnds(t *testing.T) {
	// The binding is visible only in the body.
	_, err := evalSrc(t, "let x = (let y = 1 in y) in x+y")
	require.Error(t, err)
	require.Contains(t, err.Error(), `undefined name "y"`)
}

func TestEvalBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"abs(-5)", 5},
		{"abs(5)", 5},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"min(9)", 9},
		{"max(min(4, 2), 3)", 3},
	}
	for _, tc := range cases {
		got, err := evalSrc(t, tc.src)
		require.NoError(t, err, "eval %q", tc.src)
		require.Equal(t, tc.want, got, "eval %q", tc.src)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := evalSrc(t, "1/0")
	require.Error(t, err)
	require.Equal(t, "1:2: division by zero", err.Error())
}

func TestEvalUndefinedName(t *testing.T) {
	_, err := evalSrc(t, "x+1")
	require.Error(t, err)
	require.Equal(t, `1:1: undefined name "x"`, err.Error())
}

func TestEvalUnknownFunction(t *testing.T) {
	_, err := evalSrc(t, "frob(1)")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown function "frob"`)
}

func TestEvalArity(t *testing.T) {
	_, err := evalSrc(t, "abs(1, 2)")
	require.Error(t, err)
	require.Contains(t, err.Error(), "abs takes 1 argument, got 2")

	_, err = evalSrc(t, "min()")
	require.Error(t, err)
	require.Contains(t, err.Error(), "min needs at least 1 argument")
}

func TestEvalArgumentErrorsAreWrapped(t *testing.T) {
	_, err := evalSrc(t, "abs(1/0)")
	require.Error(t, err)
	require.Equal(t, "argument 1 of abs: 1:6: division by zero", err.Error())
}
