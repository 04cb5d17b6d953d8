// Package timestamp rewrites bracketed time references in summary text into
// clickable deep links. The pass runs on raw text before block parsing so the
// rewritten links flow through the inline parser like any other markdown
// link. It is a pure text-to-text transform with no knowledge of blocks.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnorberg/vidsum/internal/youtube"
)

// Enrich rewrites every bracketed timestamp group in text into markdown
// links pointing at time-coded URLs for the given video. Groups hold one or
// more comma-separated tokens; a token is a single timestamp (8:05,
// 1:02:03) or a range (0:56-1:21), where only the range start is used for
// the link target. Display text is preserved verbatim.
//
// A token that fails to parse is left unmodified in place; sibling tokens
// are still rewritten. A group where no token parses is returned unchanged,
// brackets included. When the video URL yields no ID the text is returned
// untouched.
func Enrich(text, videoURL string) string {
	id, ok := youtube.VideoID(videoURL)
	if !ok {
		return text
	}

	var out strings.Builder
	rest := text
	for {
		open := strings.Index(rest, "[")
		if open < 0 {
			break
		}
		close := strings.Index(rest[open:], "]")
		if close < 0 {
			break
		}
		inner := rest[open+1 : open+close]
		if !timestampShaped(inner) {
			out.WriteString(rest[:open+1])
			rest = rest[open+1:]
			continue
		}

		out.WriteString(rest[:open])
		out.WriteString(rewriteGroup(rest[open:open+close+1], inner, id))
		rest = rest[open+close+1:]
	}
	out.WriteString(rest)
	return out.String()
}

// rewriteGroup rewrites one bracket group. original is the full bracketed
// match used as the fallback when nothing in the group parses.
func rewriteGroup(original, inner, id string) string {
	tokens := strings.Split(inner, ",")
	parts := make([]string, 0, len(tokens))
	linked := false
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		seconds, err := tokenSeconds(token)
		if err != nil {
			parts = append(parts, token)
			continue
		}
		linked = true
		parts = append(parts, fmt.Sprintf("[%s](%s)", token, youtube.TimedURL(id, seconds)))
	}
	if !linked {
		return original
	}
	return strings.Join(parts, ", ")
}

// timestampShaped reports whether bracket content can only be a timestamp
// group: digits, colons, and range/list punctuation. Anything else (link
// labels in particular) is left for the inline parser.
func timestampShaped(inner string) bool {
	if inner == "" {
		return false
	}
	seenDigit := false
	for _, r := range inner {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == ':' || r == ',' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return seenDigit
}

// tokenSeconds resolves a token to its link offset in seconds. For ranges
// only the start is parsed.
func tokenSeconds(token string) (int, error) {
	start := token
	if dash := strings.Index(token, "-"); dash >= 0 {
		start = strings.TrimSpace(token[:dash])
	}
	return parseClock(start)
}

// parseClock converts MM:SS or HH:MM:SS to seconds. Seconds must stay below
// 60 in both forms. The three-part form also bounds minutes below 60; the
// two-part minutes field is unbounded so offsets like 90:10 stay valid for
// videos longer than an hour.
func parseClock(s string) (int, error) {
	fields := strings.Split(s, ":")
	switch len(fields) {
	case 2:
		minutes, err := strconv.Atoi(fields[0])
		if err != nil || minutes < 0 {
			return 0, fmt.Errorf("bad minutes in %q", s)
		}
		seconds, err := strconv.Atoi(fields[1])
		if err != nil || seconds < 0 || seconds >= 60 {
			return 0, fmt.Errorf("bad seconds in %q", s)
		}
		return minutes*60 + seconds, nil
	case 3:
		hours, err := strconv.Atoi(fields[0])
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("bad hours in %q", s)
		}
		minutes, err := strconv.Atoi(fields[1])
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, fmt.Errorf("bad minutes in %q", s)
		}
		seconds, err := strconv.Atoi(fields[2])
		if err != nil || seconds < 0 || seconds >= 60 {
			return 0, fmt.Errorf("bad seconds in %q", s)
		}
		return hours*3600 + minutes*60 + seconds, nil
	}
	return 0, fmt.Errorf("not a timestamp: %q", s)
}
