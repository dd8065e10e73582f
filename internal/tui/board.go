// internal/tui/board.go
//
// Interactive status board. Presentation only: it reuses the same
// read/classify/build pipeline as the batch modes (injected as a Loader)
// and never mutates the graph.

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tim-fan/depgraph/internal/depgraph"
)

// Loader rebuilds the graph snapshot, typically by re-reading the deps
// file. Injected so tests can drive the board without a filesystem.
type Loader func() (*depgraph.Graph, map[string]depgraph.Status, error)

var (
	styleReady    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	styleAwaiting = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	styleBlocked  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	styleComplete = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).PaddingLeft(2)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Padding(1, 2)
)

// statusRank orders the board: actionable work first, finished work last.
var statusRank = map[depgraph.Status]int{
	depgraph.StatusReady:    0,
	depgraph.StatusAwaiting: 1,
	depgraph.StatusBlocked:  2,
	depgraph.StatusComplete: 3,
}

// taskItem implements list.Item for one task.
type taskItem struct {
	name   string
	status depgraph.Status
	label  string
	deps   []string
}

func (i taskItem) Title() string {
	return statusStyle(i.status).Render(fmt.Sprintf("%s  [%s]", i.name, i.status))
}

func (i taskItem) Description() string {
	if len(i.deps) == 0 {
		return "no dependencies"
	}
	return fmt.Sprintf("depends on %s", strings.Join(i.deps, ", "))
}

func (i taskItem) FilterValue() string { return i.name }

func statusStyle(status depgraph.Status) lipgloss.Style {
	switch status {
	case depgraph.StatusReady:
		return styleReady
	case depgraph.StatusAwaiting:
		return styleAwaiting
	case depgraph.StatusComplete:
		return styleComplete
	default:
		return styleBlocked
	}
}

type boardLoadedMsg struct {
	items []list.Item
	err   error
}

// Board is the bubbletea model for the status board.
type Board struct {
	path   string
	loader Loader
	tasks  list.Model
	err    error
	width  int
	height int
}

// NewBoard builds the board model. Call Run to drive it; Init/Update/View
// are exported only to satisfy tea.Model.
func NewBoard(path string, loader Loader) *Board {
	tasks := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	tasks.Title = fmt.Sprintf("Tasks — %s (r to reload, q to quit)", path)
	tasks.SetShowStatusBar(false)
	return &Board{path: path, loader: loader, tasks: tasks}
}

func (b *Board) Init() tea.Cmd {
	return b.reload
}

// reload rebuilds the snapshot and the sorted item list.
func (b *Board) reload() tea.Msg {
	g, statuses, err := b.loader()
	if err != nil {
		return boardLoadedMsg{err: err}
	}
	nodes := g.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		ri, rj := statusRank[statuses[nodes[i].Name]], statusRank[statuses[nodes[j].Name]]
		if ri != rj {
			return ri < rj
		}
		return nodes[i].Name < nodes[j].Name
	})
	items := make([]list.Item, 0, len(nodes))
	for _, node := range nodes {
		deps := g.Dependencies(node.Name)
		annotated := make([]string, len(deps))
		for k, dep := range deps {
			annotated[k] = fmt.Sprintf("%s (%s)", dep, statuses[dep])
		}
		items = append(items, taskItem{
			name:   node.Name,
			status: statuses[node.Name],
			label:  node.Label,
			deps:   annotated,
		})
	}
	return boardLoadedMsg{items: items}
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.tasks.SetSize(max(0, msg.Width-4), max(0, msg.Height-6))
		return b, nil

	case boardLoadedMsg:
		b.err = msg.err
		if msg.err == nil {
			b.tasks.SetItems(msg.items)
		}
		return b, nil

	case tea.KeyMsg:
		if b.tasks.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "r":
			return b, b.reload
		}
	}

	var cmd tea.Cmd
	b.tasks, cmd = b.tasks.Update(msg)
	return b, cmd
}

func (b *Board) View() string {
	if b.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit.", b.err))
	}
	view := b.tasks.View()
	if item, ok := b.tasks.SelectedItem().(taskItem); ok && item.label != "" {
		view += "\n" + detailStyle.Render(item.label)
	}
	return view
}

// Run drives the board until the user quits.
func Run(path string, loader Loader) error {
	p := tea.NewProgram(NewBoard(path, loader), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run board: %w", err)
	}
	return nil
}
