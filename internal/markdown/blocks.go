// Package markdown converts the loosely structured markdown dialect emitted
// by the summarizer into the typed block model in internal/blocks. The
// conversion is a single synchronous pass: one forward cursor over the lines,
// with lookahead only for fenced code and table separators. Malformed
// constructs degrade to lower-priority block kinds instead of failing.
package markdown

import (
	"regexp"
	"strings"

	"github.com/dnorberg/vidsum/internal/blocks"
)

var numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ToBlocks parses a whole document into an ordered block sequence. Blank
// lines never produce a block. Empty input yields nil.
func ToBlocks(text string) []blocks.Block {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var out []blocks.Block
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		if strings.HasPrefix(line, "```") {
			if blk, next, ok := parseFence(lines, i); ok {
				out = append(out, blk)
				i = next
				continue
			}
			// No closing fence: the opening line falls through to
			// standard classification.
		}

		if strings.HasPrefix(line, "|") && i+1 < len(lines) && isTableSeparator(strings.TrimSpace(lines[i+1])) {
			run := collectPipeLines(lines, i)
			if blk := parseTable(run); blk != nil {
				out = append(out, *blk)
				i += len(run)
				continue
			}
		}

		out = append(out, classifyLine(line))
		i++
	}
	return out
}

func classifyLine(line string) blocks.Block {
	if level, rest, ok := headingLine(line); ok {
		return blocks.Heading(level, ParseInline(rest))
	}
	if line == "---" {
		return blocks.Divider()
	}
	if rest, ok := strings.CutPrefix(line, "> "); ok {
		return blocks.Quote(ParseInline(rest))
	}
	// The "*   " variant strips exactly four leading characters, the other
	// two exactly two.
	if strings.HasPrefix(line, "*   ") {
		return blocks.BulletItem(ParseInline(line[4:]))
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return blocks.BulletItem(ParseInline(line[2:]))
	}
	if m := numberedPrefix.FindString(line); m != "" {
		// The literal ordinal is discarded; numbering need not be
		// sequential.
		return blocks.NumberedItem(ParseInline(line[len(m):]))
	}
	return blocks.Paragraph(ParseInline(line))
}

// headingLine matches a run of leading '#' followed by whitespace. One '#'
// is level 1, two is level 2, three or more collapse to level 3.
func headingLine(line string) (level int, rest string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || (line[n] != ' ' && line[n] != '\t') {
		return 0, "", false
	}
	level = n
	if level > 3 {
		level = 3
	}
	return level, strings.TrimSpace(line[n:]), true
}

// parseFence consumes a fenced code block opened at lines[start]. The
// language tag is whatever trails the opening fence. Content lines are kept
// raw: code semantics depend on indentation. Returns ok=false when no
// closing fence exists.
func parseFence(lines []string, start int) (blocks.Block, int, bool) {
	opening := strings.TrimSpace(lines[start])
	language := strings.TrimSpace(strings.TrimPrefix(opening, "```"))
	for j := start + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "```" {
			content := strings.Join(lines[start+1:j], "\n")
			return blocks.CodeBlock(language, content), j + 1, true
		}
	}
	return blocks.Block{}, 0, false
}

// collectPipeLines returns the contiguous run of trimmed lines starting at
// start whose trimmed form begins with a pipe.
func collectPipeLines(lines []string, start int) []string {
	var run []string
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "|") {
			break
		}
		run = append(run, line)
	}
	return run
}
