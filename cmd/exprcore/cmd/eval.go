package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-exprcore/internal/eval"
	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/program"
	"github.com/cwbudde/go-exprcore/internal/wire"
)

var bindingsPath string

var evalCmd = &cobra.Command{
	Use:   "eval [program.json]",
	Short: "Evaluate a JSON-encoded postfix program",
	Long: `Evaluate reads a JSON-encoded wire.Program (see internal/wire) from a
file or stdin, optionally binds tags to an in-memory context via
--bindings, and prints the resulting value.

Example:
  exprcore eval program.json --bindings bindings.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&bindingsPath, "bindings", "", "path to a JSON file of tag -> element bindings")
}

func runEval(c *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	var wp wire.Program
	if err := json.Unmarshal(data, &wp); err != nil {
		return fmt.Errorf("decoding wire program: %w", err)
	}
	if !wire.FormatVersion.IsCompatible(wp.Version) && wp.Version != (wire.Version{}) {
		return fmt.Errorf("incompatible wire format version %s (exprcore reads %s)", wp.Version, wire.FormatVersion)
	}

	prog, err := program.FromWire(wp)
	if err != nil {
		return fmt.Errorf("building program: %w", err)
	}

	var ctx graph.Context
	if bindingsPath != "" {
		ctx, err = loadBindings(bindingsPath)
		if err != nil {
			return fmt.Errorf("loading bindings: %w", err)
		}
	}

	trace, _ := c.Flags().GetBool("trace")
	if trace {
		traceProgram(prog)
	}

	v, err := eval.New(prog).Eval(ctx)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	fmt.Println(colorize(v))
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// traceProgram prints a coarse one-line-per-unit summary to stderr, the
// same granularity the teacher's --trace flag offers for script runs.
func traceProgram(p program.Program) {
	fmt.Fprintf(os.Stderr, "[trace] program has %d unit(s)\n", len(p))
	for i, u := range p {
		switch u.Kind {
		case program.UnitConst:
			fmt.Fprintf(os.Stderr, "[trace] %d: const\n", i)
		case program.UnitVar:
			fmt.Fprintf(os.Stderr, "[trace] %d: var %s\n", i, u.Tag)
		case program.UnitArith:
			fmt.Fprintf(os.Stderr, "[trace] %d: arith %s\n", i, u.Arith)
		case program.UnitLogical:
			fmt.Fprintf(os.Stderr, "[trace] %d: logical %s\n", i, u.Logical)
		}
	}
}
