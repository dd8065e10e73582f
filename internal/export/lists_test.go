package export

import (
	"strings"
	"testing"

	"github.com/tim-fan/depgraph/internal/outline"
)

func TestReadyNamesSorted(t *testing.T) {
	g, statuses := buildGraph(t,
		outline.Line{Kind: outline.KindNode, Name: "zeta task"},
		outline.Line{Kind: outline.KindNode, Name: "alpha task"},
		outline.Line{Kind: outline.KindNode, Name: "done task", Completed: true},
		outline.Line{Kind: outline.KindEdge, From: "blocked task", To: "alpha task"},
	)
	names := ReadyNames(g, statuses)
	if len(names) != 2 || names[0] != "alpha task" || names[1] != "zeta task" {
		t.Fatalf("unexpected ready names: %v", names)
	}
}

func TestAwaitingNames(t *testing.T) {
	g, statuses := buildGraph(t,
		outline.Line{Kind: outline.KindNode, Name: "await shipment"},
		outline.Line{Kind: outline.KindNode, Name: "await review", Completed: true},
		outline.Line{Kind: outline.KindNode, Name: "plain task"},
	)
	names := AwaitingNames(g, statuses)
	if len(names) != 1 || names[0] != "await shipment" {
		t.Fatalf("completed awaits must not be listed: %v", names)
	}
}

func TestTodoForListsReadyDependencies(t *testing.T) {
	g, statuses := buildGraph(t,
		outline.Line{Kind: outline.KindEdge, From: "project", To: "zeta step"},
		outline.Line{Kind: outline.KindEdge, From: "project", To: "alpha step"},
		outline.Line{Kind: outline.KindEdge, From: "project", To: "done step"},
		outline.Line{Kind: outline.KindEdge, From: "project", To: "await step"},
		outline.Line{Kind: outline.KindNode, Name: "done step", Completed: true},
		outline.Line{Kind: outline.KindNode, Name: "unrelated ready task"},
	)
	names, err := TodoFor(g, statuses, "Project")
	if err != nil {
		t.Fatalf("todo-for: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha step" || names[1] != "zeta step" {
		t.Fatalf("unexpected todo list: %v", names)
	}
}

func TestTodoForUnknownTask(t *testing.T) {
	g, statuses := buildGraph(t, outline.Line{Kind: outline.KindNode, Name: "task"})
	if _, err := TodoFor(g, statuses, "no such task"); err == nil {
		t.Fatalf("unknown task must be an error, not an empty list")
	}
}

func TestWriteNames(t *testing.T) {
	var b strings.Builder
	if err := WriteNames(&b, []string{"one", "two"}); err != nil {
		t.Fatalf("write names: %v", err)
	}
	if b.String() != "one\ntwo\n" {
		t.Fatalf("unexpected output: %q", b.String())
	}
}
