// Package youtube handles video URL parsing and metadata lookup.
package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// VideoID extracts the 11-character video ID from a canonical watch URL
// (youtube.com/watch?v=ID) or a short URL (youtu.be/ID). Any other host is
// rejected.
func VideoID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	var id string
	switch strings.TrimPrefix(u.Host, "www.") {
	case "youtube.com":
		id = u.Query().Get("v")
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
		if slash := strings.Index(id, "/"); slash >= 0 {
			id = id[:slash]
		}
	default:
		return "", false
	}

	if !idPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// TimedURL returns a deep link that starts playback at the given offset.
func TimedURL(id string, seconds int) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", id, seconds)
}
