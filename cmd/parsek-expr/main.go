// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command parsek-expr tokenizes, parses and evaluates expressions with
// the parsek engine and its demonstration language.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsek-expr",
		Short: "Parse and evaluate expressions with the parsek engine",
	}

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newEvalCmd())

	// glog registers its flags (-v and friends) on the standard set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readSource resolves the expression text: the positional argument, or
// the contents of the --file flag, stdin when the flag is "-".
func readSource(args []string, file string) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "while reading stdin")
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "while reading %s", file)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	}
	return "", errors.New("give an expression argument or --file")
}
