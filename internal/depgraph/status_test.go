package depgraph

import (
	"testing"

	"github.com/tim-fan/depgraph/internal/outline"
)

func classify(t *testing.T, lines ...outline.Line) (*Graph, map[string]Status) {
	t.Helper()
	g := Build(lines, "await")
	return g, Classify(g)
}

func TestCompleteBeatsDependencies(t *testing.T) {
	_, statuses := classify(t,
		completeNode("done task"),
		edge("done task", "unfinished dep"),
	)
	if statuses["done task"] != StatusComplete {
		t.Fatalf("explicit completion must win regardless of dependencies, got %s", statuses["done task"])
	}
}

func TestAwaitingBeatsReadiness(t *testing.T) {
	_, statuses := classify(t, node("await vendor quote"))
	if statuses["await vendor quote"] != StatusAwaiting {
		t.Fatalf("awaiting task with no dependencies must stay awaiting, got %s", statuses["await vendor quote"])
	}
}

func TestCompleteAwaitingTaskIsComplete(t *testing.T) {
	_, statuses := classify(t, completeNode("await vendor quote"))
	if statuses["await vendor quote"] != StatusComplete {
		t.Fatalf("complete takes precedence over awaiting, got %s", statuses["await vendor quote"])
	}
}

func TestNoDependenciesIsVacuouslyReady(t *testing.T) {
	_, statuses := classify(t, node("standalone task"))
	if statuses["standalone task"] != StatusReady {
		t.Fatalf("expected ready, got %s", statuses["standalone task"])
	}
}

func TestIncompleteDependencyBlocks(t *testing.T) {
	_, statuses := classify(t,
		edge("write report", "gather data"),
		edge("write report", "review notes"),
		completeNode("gather data"),
	)
	if statuses["write report"] != StatusBlocked {
		t.Fatalf("one incomplete dependency must block, got %s", statuses["write report"])
	}
}

func TestAllDependenciesCompleteIsReady(t *testing.T) {
	_, statuses := classify(t,
		edge("write report", "gather data"),
		completeNode("gather data"),
	)
	if statuses["write report"] != StatusReady {
		t.Fatalf("expected ready, got %s", statuses["write report"])
	}
}

func TestCycleMembersStayBlocked(t *testing.T) {
	_, statuses := classify(t, edge("x", "y"), edge("y", "x"))
	if statuses["x"] != StatusBlocked || statuses["y"] != StatusBlocked {
		t.Fatalf("cycle members must never reach ready: x=%s y=%s", statuses["x"], statuses["y"])
	}
}

func TestCycleMemberMarkedCompleteUnblocksTheOther(t *testing.T) {
	_, statuses := classify(t, edge("x", "y"), edge("y", "x"), completeNode("y"))
	if statuses["y"] != StatusComplete {
		t.Fatalf("expected y complete, got %s", statuses["y"])
	}
	if statuses["x"] != StatusReady {
		t.Fatalf("x's only dependency is complete, expected ready, got %s", statuses["x"])
	}
}

func TestClassifyIsExhaustiveAndExclusive(t *testing.T) {
	g, statuses := classify(t,
		node("a"),
		completeNode("b"),
		node("await c"),
		edge("d", "a"),
	)
	if len(statuses) != len(g.Nodes()) {
		t.Fatalf("every node needs exactly one status: %d statuses for %d nodes", len(statuses), len(g.Nodes()))
	}
	want := map[string]Status{
		"a":       StatusReady,
		"b":       StatusComplete,
		"await c": StatusAwaiting,
		"d":       StatusBlocked,
	}
	for name, status := range want {
		if statuses[name] != status {
			t.Fatalf("%s: got %s, want %s", name, statuses[name], status)
		}
	}
}
