package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"zappem.net/pub/math/symint/deduce"
	"zappem.net/pub/math/symint/parse"
)

func newDeduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `deduce "EXPR = VALUE"...`,
		Short: "Deduce identifier values from observed expression values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pairs []parse.Pair
			for _, arg := range args {
				eq, err := parse.Equation(arg)
				if err != nil {
					return err
				}
				pairs = append(pairs, eq)
			}
			values, err := deduce.Values(pairs)
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), "", values)
			return nil
		},
	}
}

// printValues lists values sorted by identifier.
func printValues(w io.Writer, indent string, values map[string]int64) {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "%s%s = %d\n", indent, k, values[k])
	}
}
