package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "exprcore",
	Short: "Evaluate compiled postfix graph-query expressions",
	Long: `exprcore evaluates precompiled arithmetic/logical expressions in
postfix (reverse-Polish) form, the wire format a graph query compiler
would hand the evaluator at runtime.

It does not parse textual expressions itself; use "eval" with a JSON
wire program, or "repl" for an interactive session built on the same
JSON program shape.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("trace", false, "print a one-line-per-unit evaluation trace to stderr")
}
