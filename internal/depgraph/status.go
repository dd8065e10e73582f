package depgraph

// Status is the derived state of a task. Exactly one applies per task.
type Status string

const (
	// StatusComplete: the completion marker was present.
	StatusComplete Status = "complete"
	// StatusAwaiting: named after the external-event prefix, not complete.
	StatusAwaiting Status = "awaiting"
	// StatusReady: not complete, not awaiting, every required task complete.
	StatusReady Status = "ready"
	// StatusBlocked: at least one required task is not yet complete.
	StatusBlocked Status = "blocked"
)

// Classify computes the status of every task from the graph snapshot.
// It is a pure function recomputed per query; the graph is read-only after
// construction so nothing is cached.
//
// Precedence per task: Complete beats Awaiting beats Ready beats Blocked.
// A task with no dependencies is vacuously Ready. Cycle members can never
// observe an all-complete dependency set, so they stay Blocked unless
// independently marked complete; no cycle detection is needed for that.
func Classify(g *Graph) map[string]Status {
	statuses := make(map[string]Status, len(g.nodes))
	for _, node := range g.Nodes() {
		switch {
		case node.Complete:
			statuses[node.Name] = StatusComplete
		case node.Awaiting:
			statuses[node.Name] = StatusAwaiting
		case g.dependenciesComplete(node.Name):
			statuses[node.Name] = StatusReady
		default:
			statuses[node.Name] = StatusBlocked
		}
	}
	return statuses
}

func (g *Graph) dependenciesComplete(name string) bool {
	for _, edge := range g.edges {
		if edge.From != name {
			continue
		}
		if dep, ok := g.nodes[edge.To]; !ok || !dep.Complete {
			return false
		}
	}
	return true
}
