// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args, capturing stdout. Cobra falls back to
// os.Args when given a nil slice, so the empty case is made explicit.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, newEvalCmd(), "1 + 2 * 3")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestEvalCommandLet(t *testing.T) {
	out, err := execute(t, newEvalCmd(), "let x = 4 in min(x * x, 20)")
	require.NoError(t, err)
	require.Equal(t, "16\n", out)
}

func TestEvalCommandParseError(t *testing.T) {
	_, err := execute(t, newEvalCmd(), "1 +")
	require.ErrorContains(t, err, "while parsing")
	require.ErrorContains(t, err, "unexpected end of input")
}

func TestEvalCommandEvalError(t *testing.T) {
	_, err := execute(t, newEvalCmd(), "1 / 0")
	require.ErrorContains(t, err, "while evaluating")
	require.ErrorContains(t, err, "division by zero")
}

func TestEvalCommandNoInput(t *testing.T) {
	_, err := execute(t, newEvalCmd())
	require.ErrorContains(t, err, "give an expression argument or --file")
}

func TestEvalCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.expr")
	require.NoError(t, os.WriteFile(path, []byte("let x = 2 in x + 3\n"), 0o600))

	out, err := execute(t, newEvalCmd(), "--file", path)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, newParseCmd(), "--compact", "1 + 2")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": "File",
		"children": [{
			"kind": "Binary",
			"at": {"line": 1, "column": 3},
			"value": "+",
			"children": [
				{"kind": "IntLit", "at": {"line": 1, "column": 1}, "value": "1"},
				{"kind": "IntLit", "at": {"line": 1, "column": 5}, "value": "2"}
			]
		}]
	}`, out)
}

func TestParseCommandError(t *testing.T) {
	_, err := execute(t, newParseCmd(), "let x 1")
	require.ErrorContains(t, err, "while parsing")
	require.ErrorContains(t, err, "expected =")
}

func TestTokensCommand(t *testing.T) {
	out, err := execute(t, newTokensCmd(), "1 + 2")
	require.NoError(t, err)
	require.Equal(t, "1:1\tinteger\t\"1\"\n1:3\t+\t\"+\"\n1:5\tinteger\t\"2\"\n1:6\teof\n", out)
}

func TestTokensCommandComments(t *testing.T) {
	out, err := execute(t, newTokensCmd(), "1 -- one\n")
	require.NoError(t, err)
	require.Equal(t, "1:1\tinteger\t\"1\"\n1:3\tcomment\t\" one\"\n2:1\teof\n", out)
}

func TestTokensCommandLexError(t *testing.T) {
	_, err := execute(t, newTokensCmd(), "1 ? 2")
	require.EqualError(t, err, "1:3: unexpected character '?'")
}
