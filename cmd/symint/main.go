// Program symint renders, evaluates and solves symbolic integer
// polynomials from the command line. Run "symint repl" for an
// interactive session.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are shared by all subcommands.
type options struct {
	configPath string
	logLevel   string
	cfg        *Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "symint [subcommand]",
		Short:        "symint renders, evaluates and solves symbolic integer polynomials",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", os.Getenv("SYMINT_CONFIG"), "YAML file holding log_level and values")
	flags.StringVar(&opts.logLevel, "log-level", "", "one of debug, info, warn or error")

	root.AddCommand(newShowCmd())
	root.AddCommand(newEvalCmd(opts))
	root.AddCommand(newDeduceCmd())
	root.AddCommand(newReplCmd(opts))
	return root
}
