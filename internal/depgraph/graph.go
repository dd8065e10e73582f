// Package depgraph holds the task dependency graph: nodes keyed by
// normalized task name, directed edges from a dependent task to the task it
// requires, and the four-way status classification derived from them.
package depgraph

import (
	"sort"
	"strings"

	"github.com/tim-fan/depgraph/internal/outline"
)

// Node is one task. Identity is the normalized name; repeated declarations
// of the same name merge into one node.
type Node struct {
	Name string

	// Complete is set by the outline's completion marker. Any occurrence
	// marking the task complete wins.
	Complete bool

	// Awaiting means the task name carries the external-event prefix.
	Awaiting bool

	// Label accumulates comment text attached to the task, newline-joined.
	Label string
}

// Edge records that From requires To. Edges collapse with set semantics.
type Edge struct {
	From, To string
}

// Graph is the immutable-after-build task graph. Nodes and edges keep
// insertion order so output is stable for a given input.
type Graph struct {
	nodes   map[string]*Node
	ordered []string
	edges   []Edge
	edgeSet map[Edge]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edgeSet: make(map[Edge]struct{}),
	}
}

// Normalize maps a raw task name to its identity: lowercased by the reader
// already, inner whitespace collapsed, ends trimmed.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Ensure returns the node for name, creating it with default incomplete
// status on first reference from either a declaration or an edge endpoint.
func (g *Graph) Ensure(name string) *Node {
	name = Normalize(name)
	if node, ok := g.nodes[name]; ok {
		return node
	}
	node := &Node{Name: name}
	g.nodes[name] = node
	g.ordered = append(g.ordered, name)
	return node
}

// Node looks up a task by name.
func (g *Graph) Node(name string) (*Node, bool) {
	node, ok := g.nodes[Normalize(name)]
	return node, ok
}

// Nodes returns all tasks in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.ordered))
	for _, name := range g.ordered {
		out = append(out, g.nodes[name])
	}
	return out
}

// Edges returns all dependency edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// AddEdge records that from requires to, creating both endpoints if
// needed. Duplicate edges are dropped.
func (g *Graph) AddEdge(from, to string) {
	edge := Edge{From: g.Ensure(from).Name, To: g.Ensure(to).Name}
	if _, ok := g.edgeSet[edge]; ok {
		return
	}
	g.edgeSet[edge] = struct{}{}
	g.edges = append(g.edges, edge)
}

// Dependencies returns the names of the tasks that name directly requires,
// sorted for stable output.
func (g *Graph) Dependencies(name string) []string {
	name = Normalize(name)
	var deps []string
	for _, edge := range g.edges {
		if edge.From == name {
			deps = append(deps, edge.To)
		}
	}
	sort.Strings(deps)
	return deps
}

// Dependents returns the names of the tasks that directly require name,
// sorted for stable output.
func (g *Graph) Dependents(name string) []string {
	name = Normalize(name)
	var deps []string
	for _, edge := range g.edges {
		if edge.To == name {
			deps = append(deps, edge.From)
		}
	}
	sort.Strings(deps)
	return deps
}

// Build consumes the classified line stream in order. Comments attach to
// the task declared by the nearest preceding node-or-edge line (an edge
// line declares its dependent, From). Awaiting detection runs once after
// the whole stream is consumed so it is independent of declaration order.
func Build(lines []outline.Line, awaitingPrefix string) *Graph {
	g := NewGraph()
	var current *Node
	for _, line := range lines {
		switch line.Kind {
		case outline.KindNode:
			node := g.Ensure(line.Name)
			if line.Completed {
				node.Complete = true
			}
			current = node
		case outline.KindEdge:
			g.AddEdge(line.From, line.To)
			current, _ = g.Node(line.From)
		case outline.KindComment:
			if current == nil || line.Comment == "" {
				continue
			}
			if current.Label != "" {
				current.Label += "\n"
			}
			current.Label += line.Comment
		}
	}

	prefix := strings.ToLower(strings.TrimSpace(awaitingPrefix))
	if prefix != "" {
		for _, node := range g.Nodes() {
			node.Awaiting = strings.HasPrefix(node.Name, prefix)
		}
	}
	return g
}
