package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zappem.net/pub/math/symint/parse"
)

func newShowCmd() *cobra.Command {
	var code bool
	cmd := &cobra.Command{
		Use:   "show EXPR...",
		Short: "Print expressions in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := parse.Exp(arg)
				if err != nil {
					return err
				}
				if code {
					fmt.Fprintln(cmd.OutOrStdout(), p.ToCode(func(id string) string { return id }))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&code, "code", false, "render with explicit operators and expanded powers")
	return cmd
}
