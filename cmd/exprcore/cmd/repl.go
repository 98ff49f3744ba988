package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-exprcore/internal/eval"
	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/program"
	"github.com/cwbudde/go-exprcore/internal/wire"
)

var replErrColor = color.New(color.FgRed)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively evaluate postfix programs",
	Long: `Repl starts a read-eval-print loop: each line is a single
JSON-encoded wire.Program (same shape "eval" reads), evaluated against
an optional --bindings context as it's entered. Type .exit or press
Ctrl+D to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&bindingsPath, "bindings", "", "path to a JSON file of tag -> element bindings")
}

func runRepl(c *cobra.Command, args []string) error {
	var ctx graph.Context
	if bindingsPath != "" {
		bound, err := loadBindings(bindingsPath)
		if err != nil {
			return fmt.Errorf("loading bindings: %w", err)
		}
		ctx = bound
	}

	rl, err := readline.New("exprcore> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stderr(), "exprcore REPL — one JSON wire.Program per line, .exit to quit")

	trace, _ := c.Flags().GetBool("trace")

	for {
		line, err := rl.Readline()
		if err != nil {
			if err != io.EOF {
				return err
			}
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)

		if err := evalReplLine(line, ctx, trace); err != nil {
			replErrColor.Fprintf(os.Stdout, "%v\n", err)
		}
	}
}

func evalReplLine(line string, ctx graph.Context, trace bool) error {
	var wp wire.Program
	if err := json.Unmarshal([]byte(line), &wp); err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}
	prog, err := program.FromWire(wp)
	if err != nil {
		return fmt.Errorf("building program: %w", err)
	}
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
