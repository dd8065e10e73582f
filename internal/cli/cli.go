// Package cli parses the command surface and runs the selected output
// mode. It owns process-level concerns (flags, config discovery, logging
// setup) so the parsing and graph packages stay pure.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tim-fan/depgraph/internal/config"
)

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode selects what the run emits.
type Mode string

const (
	ModeGraph        Mode = "graph"
	ModeReadyList    Mode = "ready-list"
	ModeAwaitingList Mode = "awaiting-list"
	ModeTodoFor      Mode = "todo-for"
	ModeBoard        Mode = "board"
)

// Options is the fully resolved run configuration: flags merged over the
// discovered config file.
type Options struct {
	DepsFile   string
	Mode       Mode
	TodoTarget string
	LogLevel   string
	Config     config.Config
}

// Parse processes command-line arguments. It returns the resolved Options,
// a boolean indicating the program should exit cleanly (help shown), or an
// ExitError for usage problems.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("depgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
depgraph - render a task outline as a dependency graph.

Usage:
  depgraph [options] [DEPS_FILE]

Arguments:
  DEPS_FILE
    Path to the outline export. Defaults to deps_file from .depgraph.yaml,
    or deps.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the outline export.")
	fFlag := flagSet.String("f", "", "Path to the outline export (shorthand).")
	configFlag := flagSet.String("config", "", "Path to the config file.")
	listReadyFlag := flagSet.Bool("list-ready", false, "Print ready task names, one per line.")
	listAwaitingFlag := flagSet.Bool("list-awaiting", false, "Print awaiting task names, one per line.")
	todoForFlag := flagSet.String("todo-for", "", "Print the ready direct dependencies of the named task.")
	boardFlag := flagSet.Bool("board", false, "Open the interactive status board.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	mode := ModeGraph
	target := strings.TrimSpace(*todoForFlag)
	selected := 0
	if *listReadyFlag {
		mode = ModeReadyList
		selected++
	}
	if *listAwaitingFlag {
		mode = ModeAwaitingList
		selected++
	}
	if target != "" {
		mode = ModeTodoFor
		selected++
	}
	if *boardFlag {
		mode = ModeBoard
		selected++
	}
	if selected > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one of --list-ready, --list-awaiting, --todo-for, --board may be given"}
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return nil, false, err
	}

	path := cfg.DepsFile
	if *fileFlag != "" {
		path = *fileFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	return &Options{
		DepsFile:   path,
		Mode:       mode,
		TodoTarget: target,
		LogLevel:   logLevel,
		Config:     cfg,
	}, false, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Discover()
	}
	// An explicit --config that does not exist is a user error, not a
	// fall-back-to-defaults situation.
	return config.Load(path)
}

// NewLogger builds the process logger. Diagnostics go to stderr as text so
// stdout stays clean for the graph output.
func NewLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
