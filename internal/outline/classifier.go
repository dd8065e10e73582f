package outline

import (
	"log/slog"
	"strings"
)

// arrowToken separates the two task names of an edge declaration.
const arrowToken = "->"

// LineKind tags the classified form of an outline record.
type LineKind int

const (
	// KindNode declares (or re-mentions) a standalone task.
	KindNode LineKind = iota
	// KindEdge declares a dependency: From requires To.
	KindEdge
	// KindComment carries annotation text for the preceding task line.
	KindComment
)

// Line is one classified outline record.
type Line struct {
	Kind LineKind

	// Name is set for KindNode.
	Name string
	// From and To are set for KindEdge.
	From, To string
	// Comment is set for KindComment, quotes stripped, inner line breaks
	// joined with "\n".
	Comment string

	// Completed carries the record's completion marker through to the
	// builder. Only meaningful for KindNode.
	Completed bool

	// Depth is the record's nesting depth, kept so comment attachment can
	// respect the outline hierarchy.
	Depth int
}

// Classify converts ordered records into tagged lines.
//
// Precedence per record: an open quoted comment consumes the line; then
// arrow detection; then comment-start detection; everything else is a bare
// node declaration (the format has no stricter grammar than that).
//
// A quoted comment starts at a line whose text begins with `"` and runs
// until a line whose text ends with `"`, matching the export's multi-line
// annotation convention.
func Classify(records []Record) []Line {
	var lines []Line
	var comment []string
	commentOpen := false
	commentDepth := 0

	closeComment := func() {
		lines = append(lines, Line{
			Kind:    KindComment,
			Comment: strings.Join(comment, "\n"),
			Depth:   commentDepth,
		})
		comment = nil
		commentOpen = false
	}

	for _, rec := range records {
		text := strings.TrimSpace(rec.Text)

		if commentOpen {
			done := strings.HasSuffix(text, `"`)
			comment = append(comment, strings.Trim(text, `"`))
			if done {
				closeComment()
			}
			continue
		}

		if strings.Contains(text, arrowToken) {
			if line, ok := splitEdge(text, rec); ok {
				lines = append(lines, line)
				continue
			}
			slog.Warn("ambiguous edge syntax, treating as task name", "text", text)
			lines = append(lines, Line{Kind: KindNode, Name: text, Completed: rec.Completed, Depth: rec.Depth})
			continue
		}

		if strings.HasPrefix(text, `"`) {
			commentOpen = true
			commentDepth = rec.Depth
			done := len(text) > 1 && strings.HasSuffix(text, `"`)
			comment = append(comment, strings.Trim(text, `"`))
			if done {
				closeComment()
			}
			continue
		}

		lines = append(lines, Line{Kind: KindNode, Name: text, Completed: rec.Completed, Depth: rec.Depth})
	}

	// Unterminated comment at EOF still attaches what it gathered.
	if commentOpen {
		closeComment()
	}
	return lines
}

// splitEdge parses "<from> -> <to>". Both sides must be non-empty after
// trimming; otherwise the arrow is ambiguous and the caller falls back to a
// node declaration.
func splitEdge(text string, rec Record) (Line, bool) {
	from, to, _ := strings.Cut(text, arrowToken)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return Line{}, false
	}
	return Line{Kind: KindEdge, From: from, To: to, Completed: rec.Completed, Depth: rec.Depth}, true
}
