package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"zappem.net/pub/math/symint/parse"
	"zappem.net/pub/math/symint/terms"
)

func newEvalCmd(opts *options) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval EXPR... [--set name=value]...",
		Short: "Evaluate expressions with known identifier values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(terms.Map[string, int64])
			for k, v := range opts.cfg.Values {
				values[k] = v
			}
			for _, s := range sets {
				name, v, err := parse.Assignment(s)
				if err != nil {
					return errors.WithMessage(err, "--set")
				}
				values[name] = v
			}
			for _, arg := range args {
				p, err := parse.Exp(arg)
				if err != nil {
					return err
				}
				v, err := p.Eval(values)
				if err != nil {
					return errors.Wrapf(err, "evaluating %v", p)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v = %d\n", p, v)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "identifier value as name=value, repeatable")
	return cmd
}
