package markdown

import (
	"strings"

	"github.com/dnorberg/vidsum/internal/blocks"
)

// ParseInline resolves inline markup in a single line of text into an ordered
// run sequence. The scanner moves left to right with no backtracking over
// already-emitted runs; at each position the patterns are attempted in strict
// priority order: link, strikethrough, bold, italic, inline code. An unmatched
// delimiter character is ordinary text and advances the cursor by one.
//
// Empty input yields no runs.
func ParseInline(text string) []blocks.TextRun {
	var runs []blocks.TextRun
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, blocks.TextRun{Content: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		switch text[i] {
		case '[':
			if run, n, ok := matchLink(text[i:]); ok {
				flush()
				runs = append(runs, run)
				i += n
				continue
			}
		case '~':
			if inner, n, ok := matchDelimited(text[i:], "~~"); ok {
				flush()
				runs = append(runs, annotate(ParseInline(inner), setStrikethrough)...)
				i += n
				continue
			}
		case '*':
			if inner, n, ok := matchDelimited(text[i:], "**"); ok {
				flush()
				runs = append(runs, annotate(ParseInline(inner), setBold)...)
				i += n
				continue
			}
			if inner, n, ok := matchDelimited(text[i:], "*"); ok {
				flush()
				runs = append(runs, annotate(ParseInline(inner), setItalic)...)
				i += n
				continue
			}
		case '`':
			if inner, n, ok := matchDelimited(text[i:], "`"); ok {
				flush()
				runs = append(runs, blocks.TextRun{Content: inner, Code: true})
				i += n
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()
	return runs
}

// matchLink matches [text](url) at the start of s. Link text may be wrapped
// in exactly one of bold, strikethrough, or italic delimiters; the wrapper
// becomes an annotation on the emitted run. Link text is not re-parsed beyond
// that single-level check.
func matchLink(s string) (blocks.TextRun, int, bool) {
	labelEnd := strings.Index(s, "]")
	if labelEnd < 2 || labelEnd+1 >= len(s) || s[labelEnd+1] != '(' {
		return blocks.TextRun{}, 0, false
	}
	urlEnd := strings.Index(s[labelEnd+2:], ")")
	if urlEnd < 0 {
		return blocks.TextRun{}, 0, false
	}

	label := s[1:labelEnd]
	run := blocks.TextRun{
		Content: label,
		LinkURL: s[labelEnd+2 : labelEnd+2+urlEnd],
	}
	switch {
	case len(label) >= 4 && strings.HasPrefix(label, "**") && strings.HasSuffix(label, "**"):
		run.Content = label[2 : len(label)-2]
		run.Bold = true
	case len(label) >= 4 && strings.HasPrefix(label, "~~") && strings.HasSuffix(label, "~~"):
		run.Content = label[2 : len(label)-2]
		run.Strikethrough = true
	case len(label) >= 2 && strings.HasPrefix(label, "*") && strings.HasSuffix(label, "*"):
		run.Content = label[1 : len(label)-1]
		run.Italic = true
	}
	return run, labelEnd + 2 + urlEnd + 1, true
}

// matchDelimited matches delim...delim at the start of s and returns the
// enclosed text. Returns false when no closing delimiter follows or the
// span is empty; empty spans (e.g. "**" standing alone) read as ordinary
// text, not markup.
func matchDelimited(s, delim string) (inner string, consumed int, ok bool) {
	if !strings.HasPrefix(s, delim) {
		return "", 0, false
	}
	rest := s[len(delim):]
	end := strings.Index(rest, delim)
	if end <= 0 {
		return "", 0, false
	}
	return rest[:end], 2*len(delim) + end, true
}

// annotate applies fn to every run except code runs, which never carry
// additional annotations.
func annotate(runs []blocks.TextRun, fn func(*blocks.TextRun)) []blocks.TextRun {
	for i := range runs {
		if runs[i].Code {
			continue
		}
		fn(&runs[i])
	}
	return runs
}

func setBold(r *blocks.TextRun)          { r.Bold = true }
func setItalic(r *blocks.TextRun)        { r.Italic = true }
func setStrikethrough(r *blocks.TextRun) { r.Strikethrough = true }
