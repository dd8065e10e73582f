// Package outline parses the plain-text outline export that declares the
// dependency graph. The format is deliberately loose: bullet lines declare
// tasks or edges, quoted lines carry comments, indentation carries nesting.
package outline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// completeMarker is the out-of-band completion flag the export embeds in a
// line's text.
const completeMarker = "[complete]"

// Record is one outline entry after depth, bullet, and marker extraction.
type Record struct {
	Depth     int
	Text      string
	Completed bool
}

// ReaderOptions control depth extraction.
type ReaderOptions struct {
	// IndentWidth is how many leading spaces make one nesting level.
	IndentWidth int
}

// Read scans an outline export into ordered records. The whole input is
// lowercased first so task identity is case-insensitive throughout.
//
// Lines whose indentation cannot be mapped to a depth are recovered as
// depth-0 siblings with a warning rather than aborting; the rest of the
// file must still be usable. Blank lines and empty bullets are skipped.
func Read(r io.Reader, opts ReaderOptions) ([]Record, error) {
	indentWidth := opts.IndentWidth
	if indentWidth < 1 {
		indentWidth = 1
	}

	var records []Record
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ToLower(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth, rest, err := splitDepth(line, indentWidth)
		if err != nil {
			slog.Warn("malformed indentation, treating as top-level", "line", lineNo, "err", err)
			depth = 0
			rest = strings.TrimLeft(line, " \t")
		}

		text := strings.TrimSpace(strings.TrimPrefix(rest, "-"))
		text, completed := stripCompleteMarker(text)
		if text == "" {
			continue
		}

		records = append(records, Record{Depth: depth, Text: text, Completed: completed})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("outline: read input: %w", err)
	}
	return records, nil
}

// splitDepth converts leading whitespace into a nesting depth. Tabs count
// one level each; spaces count in groups of indentWidth. A space run that
// is not a whole number of levels cannot be depth-determined.
func splitDepth(line string, indentWidth int) (int, string, error) {
	depth := 0
	spaces := 0
	i := 0
scan:
	for ; i < len(line); i++ {
		switch line[i] {
		case '\t':
			depth++
		case ' ':
			spaces++
		default:
			break scan
		}
	}
	if spaces%indentWidth != 0 {
		return 0, "", fmt.Errorf("outline: %d leading spaces with indent width %d", spaces, indentWidth)
	}
	return depth + spaces/indentWidth, line[i:], nil
}

// stripCompleteMarker removes every occurrence of the completion marker and
// reports whether one was present.
func stripCompleteMarker(text string) (string, bool) {
	if !strings.Contains(text, completeMarker) {
		return text, false
	}
	text = strings.ReplaceAll(text, completeMarker, " ")
	return strings.Join(strings.Fields(text), " "), true
}
