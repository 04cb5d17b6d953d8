package markdown

import (
	"regexp"
	"strings"

	"github.com/dnorberg/vidsum/internal/blocks"
)

// separatorCell matches one cell of a table separator line: at least two
// dashes, optionally framed by alignment colons. Alignment is validated but
// not preserved in the output model.
var separatorCell = regexp.MustCompile(`^:?-{2,}:?$`)

// parseTable builds a table block from a contiguous run of pipe-prefixed
// lines: header, separator, then data rows. Returns nil when the separator
// is invalid, in which case the caller falls back to line-by-line
// classification for the run.
//
// Data rows whose cell count differs from the header are silently dropped;
// the summarizer occasionally emits ragged rows and losing one row beats
// losing the table.
func parseTable(lines []string) *blocks.Block {
	if len(lines) < 2 {
		return nil
	}
	header := splitRow(lines[0])
	if len(header) == 0 {
		return nil
	}
	sep := splitRow(lines[1])
	if len(sep) != len(header) {
		return nil
	}
	for _, cell := range sep {
		if !separatorCell.MatchString(cell) {
			return nil
		}
	}

	rows := []blocks.Row{{IsHeader: true, Cells: cellRuns(header)}}
	for _, line := range lines[2:] {
		cells := splitRow(line)
		if len(cells) != len(header) {
			continue
		}
		rows = append(rows, blocks.Row{Cells: cellRuns(cells)})
	}

	blk := blocks.Table(rows)
	return &blk
}

// isTableSeparator reports whether a trimmed line looks like a table
// separator. Cell counts are checked later by parseTable.
func isTableSeparator(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	cells := splitRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

// splitRow splits a pipe-delimited line into trimmed cells, discarding the
// empty leading/trailing cells produced by framing pipes.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// cellRuns parses every cell independently through the inline parser.
func cellRuns(cells []string) [][]blocks.TextRun {
	out := make([][]blocks.TextRun, len(cells))
	for i, cell := range cells {
		out[i] = ParseInline(cell)
	}
	return out
}
