// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/parsek"
	"code.hybscloud.com/parsek/expr"
)

func newTokensCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tokens [expression]",
		Short: "Dump the token stream of an expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args, file)
			if err != nil {
				return err
			}
			glog.V(1).Infof("tokenizing %d bytes", len(src))

			out := cmd.OutOrStdout()
			s := expr.Stream(src)
			for {
				switch step := s.Step().(type) {
				case parsek.StepToken:
					tok := step.Token.(expr.Token)
					for _, c := range tok.Leading {
						fmt.Fprintf(out, "%s\tcomment\t%q\n", c.At, c.Text)
					}
					fmt.Fprintf(out, "%s\t%s\t%q\n", tok.Start, tok.Kind, tok.Text)
					s = step.Rest
				case parsek.StepEOF:
					for _, c := range step.Trivia.([]expr.Comment) {
						fmt.Fprintf(out, "%s\tcomment\t%q\n", c.At, c.Text)
					}
					fmt.Fprintf(out, "%s\teof\n", step.Pos)
					return nil
				case parsek.StepError:
					return errors.Errorf("%s: %s", step.Pos, step.Msg)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from this file instead (\"-\" for stdin)")
	return cmd
}
