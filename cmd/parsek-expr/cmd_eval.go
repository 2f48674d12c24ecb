// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/parsek/expr"
)

func newEvalCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression and print its value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args, file)
			if err != nil {
				return err
			}

			e, err := expr.ParseExpr(src)
			if err != nil {
				return errors.Wrap(err, "while parsing")
			}
			glog.V(1).Infof("parsed %d bytes, evaluating", len(src))

			v, err := expr.Eval(e)
			if err != nil {
				return errors.Wrap(err, "while evaluating")
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from this file instead (\"-\" for stdin)")
	return cmd
}
