package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tim-fan/depgraph/internal/config"
	"github.com/tim-fan/depgraph/internal/depgraph"
	"github.com/tim-fan/depgraph/internal/export"
	"github.com/tim-fan/depgraph/internal/outline"
	"github.com/tim-fan/depgraph/internal/tui"
)

// Run executes the selected mode, writing its output to stdout. The board
// mode takes over the terminal instead.
func Run(opts *Options, stdout io.Writer) error {
	if opts.Mode == ModeBoard {
		return tui.Run(opts.DepsFile, func() (*depgraph.Graph, map[string]depgraph.Status, error) {
			return loadGraph(opts.DepsFile, opts.Config)
		})
	}

	g, statuses, err := loadGraph(opts.DepsFile, opts.Config)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeReadyList:
		return export.WriteNames(stdout, export.ReadyNames(g, statuses))
	case ModeAwaitingList:
		return export.WriteNames(stdout, export.AwaitingNames(g, statuses))
	case ModeTodoFor:
		names, err := export.TodoFor(g, statuses, opts.TodoTarget)
		if err != nil {
			return err
		}
		return export.WriteNames(stdout, names)
	default:
		return export.WriteDOT(stdout, g, statuses, export.DOTOptions{
			Colors:    opts.Config.Colors,
			WrapWidth: opts.Config.WrapWidth,
		})
	}
}

// loadGraph runs the whole pipeline once: read the outline, classify its
// lines, build the graph, derive statuses.
func loadGraph(path string, cfg config.Config) (*depgraph.Graph, map[string]depgraph.Status, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: open deps file: %w", err)
	}
	defer f.Close()

	records, err := outline.Read(f, outline.ReaderOptions{IndentWidth: cfg.IndentWidth})
	if err != nil {
		return nil, nil, err
	}
	g := depgraph.Build(outline.Classify(records), cfg.AwaitingPrefix)
	return g, depgraph.Classify(g), nil
}
