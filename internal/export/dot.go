// Package export serializes a classified task graph: Graphviz DOT for
// visualization, and plain sorted name lists for the filtered output modes.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tim-fan/depgraph/internal/config"
	"github.com/tim-fan/depgraph/internal/depgraph"
)

// dotNewline left-justifies label lines in Graphviz.
const dotNewline = `\l`

// DOTOptions control graph serialization.
type DOTOptions struct {
	// Colors picks the fill color per status.
	Colors config.Colors
	// WrapWidth is the column at which comment labels wrap.
	WrapWidth int
}

// WriteDOT emits the graph as a DOT digraph: one statement per edge, then
// one per node with a fill color keyed to its status. Node identifiers and
// labels are quoted and escaped so free-form task names stay valid DOT.
func WriteDOT(w io.Writer, g *depgraph.Graph, statuses map[string]depgraph.Status, opts DOTOptions) error {
	if opts.WrapWidth < 1 {
		opts.WrapWidth = config.Default().WrapWidth
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("rankdir=\"LR\"\n\n")

	for _, edge := range g.Edges() {
		fmt.Fprintf(&b, "    %s -> %s\n", quote(edge.From), quote(edge.To))
	}

	for _, node := range g.Nodes() {
		fmt.Fprintf(&b, "    %s [label=\"%s\",style=filled,fillcolor=%s]\n",
			quote(node.Name), nodeLabel(node, opts.WrapWidth), fillColor(statuses[node.Name], opts.Colors))
	}

	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export: write graph: %w", err)
	}
	return nil
}

// nodeLabel renders the accumulated comment text wrapped to width, or the
// bare task name when no comments were attached.
func nodeLabel(node *depgraph.Node, width int) string {
	if node.Label == "" {
		return escape(node.Name)
	}
	var lines []string
	for _, line := range strings.Split(node.Label, "\n") {
		lines = append(lines, wrap(line, width)...)
	}
	for i, line := range lines {
		lines[i] = escape(line)
	}
	// Trailing terminator keeps the last line left-justified too.
	return strings.Join(lines, dotNewline) + dotNewline
}

func fillColor(status depgraph.Status, colors config.Colors) string {
	switch status {
	case depgraph.StatusComplete:
		return colors.Complete
	case depgraph.StatusAwaiting:
		return colors.Awaiting
	case depgraph.StatusReady:
		return colors.Ready
	default:
		return colors.Blocked
	}
}

// quote wraps an identifier in double quotes with DOT escaping.
func quote(s string) string {
	return `"` + escape(s) + `"`
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// wrap breaks text into lines at most width columns wide, splitting on
// spaces. A single word longer than width stays on its own line.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
