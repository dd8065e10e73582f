// cmd/depgraph/main.go
//
// Entry point. Reads a plain-text outline of tasks and dependencies and
// emits a Graphviz digraph (or one of the filtered list modes). All the
// interesting work lives in internal/.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tim-fan/depgraph/internal/cli"
)

func main() {
	opts, exitCleanly, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
	if exitCleanly {
		return
	}

	slog.SetDefault(cli.NewLogger(opts.LogLevel, os.Stderr))

	if err := cli.Run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
