// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/parsek/expr"
)

func newParseCmd() *cobra.Command {
	var (
		file    string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and print its syntax tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args, file)
			if err != nil {
				return err
			}

			f, err := expr.ParseFile(src)
			if err != nil {
				return errors.Wrap(err, "while parsing")
			}
			glog.V(1).Infof("parsed %d bytes", len(src))

			var data []byte
			if compact {
				data, err = json.Marshal(f)
			} else {
				data, err = json.MarshalIndent(f, "", "  ")
			}
			if err != nil {
				return errors.Wrap(err, "while encoding syntax tree")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from this file instead (\"-\" for stdin)")
	cmd.Flags().BoolVar(&compact, "compact", false, "print the tree on a single line")
	return cmd
}
