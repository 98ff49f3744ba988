// Command exprcore is a small demonstrator CLI around the evaluator
// library: it evaluates a compiled postfix program against an optional
// in-memory context, either in one shot or interactively.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-exprcore/cmd/exprcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
