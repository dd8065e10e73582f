package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tim-fan/depgraph/internal/depgraph"
)

// ReadyNames returns every Ready task name, lexicographically sorted for
// reproducible output.
func ReadyNames(g *depgraph.Graph, statuses map[string]depgraph.Status) []string {
	return namesWithStatus(g, statuses, depgraph.StatusReady)
}

// AwaitingNames returns every Awaiting task name, sorted.
func AwaitingNames(g *depgraph.Graph, statuses map[string]depgraph.Status) []string {
	return namesWithStatus(g, statuses, depgraph.StatusAwaiting)
}

// TodoFor returns the Ready tasks among name's direct dependencies,
// sorted. An unknown name is an error rather than an empty list, so a
// misspelled task is not mistaken for one with nothing to do.
func TodoFor(g *depgraph.Graph, statuses map[string]depgraph.Status, name string) ([]string, error) {
	node, ok := g.Node(name)
	if !ok {
		return nil, fmt.Errorf("export: unknown task %q", strings.TrimSpace(name))
	}
	var names []string
	for _, dep := range g.Dependencies(node.Name) {
		if statuses[dep] == depgraph.StatusReady {
			names = append(names, dep)
		}
	}
	sort.Strings(names)
	return names, nil
}

// WriteNames prints one name per line.
func WriteNames(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("export: write list: %w", err)
		}
	}
	return nil
}

func namesWithStatus(g *depgraph.Graph, statuses map[string]depgraph.Status, want depgraph.Status) []string {
	var names []string
	for _, node := range g.Nodes() {
		if statuses[node.Name] == want {
			names = append(names, node.Name)
		}
	}
	sort.Strings(names)
	return names
}
