package depgraph

import (
	"testing"

	"github.com/tim-fan/depgraph/internal/outline"
)

func node(name string) outline.Line {
	return outline.Line{Kind: outline.KindNode, Name: name}
}

func completeNode(name string) outline.Line {
	return outline.Line{Kind: outline.KindNode, Name: name, Completed: true}
}

func edge(from, to string) outline.Line {
	return outline.Line{Kind: outline.KindEdge, From: from, To: to}
}

func comment(text string) outline.Line {
	return outline.Line{Kind: outline.KindComment, Comment: text}
}

func TestBuildMergesRepeatedDeclarations(t *testing.T) {
	g := Build([]outline.Line{node("task a"), completeNode("task a"), node("task  a")}, "await")
	nodes := g.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected repeated declarations to merge, got %d nodes", len(nodes))
	}
	if !nodes[0].Complete {
		t.Fatalf("any occurrence marking complete must win")
	}
}

func TestBuildEdgeIsIdempotent(t *testing.T) {
	g := Build([]outline.Line{edge("a", "b"), edge("a", "b"), edge("a", "b")}, "await")
	if len(g.Edges()) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.Edges()))
	}
	if len(g.Nodes()) != 2 {
		t.Fatalf("expected both endpoints to exist, got %d nodes", len(g.Nodes()))
	}
}

func TestBuildCreatesNodesFromEdgesLazily(t *testing.T) {
	g := Build([]outline.Line{edge("a", "b")}, "await")
	for _, name := range []string{"a", "b"} {
		n, ok := g.Node(name)
		if !ok {
			t.Fatalf("expected implicit node %q", name)
		}
		if n.Complete {
			t.Fatalf("implicit node %q must default to incomplete", name)
		}
	}
}

func TestBuildAttachesCommentsToPrecedingLine(t *testing.T) {
	g := Build([]outline.Line{
		node("task a"),
		comment("needs review"),
		comment("second note"),
		edge("task b", "task a"),
		comment("edge note"),
	}, "await")

	a, _ := g.Node("task a")
	if a.Label != "needs review\nsecond note" {
		t.Fatalf("unexpected label on task a: %q", a.Label)
	}
	// A comment after an edge line attaches to the dependent task.
	b, _ := g.Node("task b")
	if b.Label != "edge note" {
		t.Fatalf("unexpected label on task b: %q", b.Label)
	}
}

func TestBuildLeadingCommentIsDropped(t *testing.T) {
	g := Build([]outline.Line{comment("orphan"), node("task")}, "await")
	n, _ := g.Node("task")
	if n.Label != "" {
		t.Fatalf("comment with no preceding task must not attach, got %q", n.Label)
	}
}

func TestBuildAwaitingFromNamePrefix(t *testing.T) {
	g := Build([]outline.Line{node("await reply from bob"), node("awaiting parts"), node("write report")}, "await")
	for name, want := range map[string]bool{
		"await reply from bob": true,
		"awaiting parts":       true,
		"write report":         false,
	} {
		n, ok := g.Node(name)
		if !ok {
			t.Fatalf("missing node %q", name)
		}
		if n.Awaiting != want {
			t.Fatalf("%q: awaiting = %v, want %v", name, n.Awaiting, want)
		}
	}
}

func TestDependenciesAndDependents(t *testing.T) {
	g := Build([]outline.Line{edge("a", "c"), edge("a", "b"), edge("d", "b")}, "await")
	deps := g.Dependencies("a")
	if len(deps) != 2 || deps[0] != "b" || deps[1] != "c" {
		t.Fatalf("unexpected sorted dependencies of a: %v", deps)
	}
	dependents := g.Dependents("b")
	if len(dependents) != 2 || dependents[0] != "a" || dependents[1] != "d" {
		t.Fatalf("unexpected dependents of b: %v", dependents)
	}
}

func TestNormalizeIdentity(t *testing.T) {
	g := NewGraph()
	g.Ensure("  Task   A ")
	if _, ok := g.Node("task a"); !ok {
		t.Fatalf("expected whitespace/case-normalized identity")
	}
}
