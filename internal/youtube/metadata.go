package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultOEmbedURL = "https://www.youtube.com/oembed"

// Metadata is the subset of the oEmbed response the pipeline cares about.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author_name"`
	Thumbnail string `json:"thumbnail_url"`
}

// Client looks up video metadata through the public oEmbed endpoint. No API
// key is required.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		endpoint: defaultOEmbedURL,
	}
}

// NewClientWithEndpoint is used by tests to point the client at a stub
// server.
func NewClientWithEndpoint(endpoint string) *Client {
	c := NewClient()
	c.endpoint = endpoint
	return c
}

// Metadata fetches title, channel, and thumbnail for a video URL.
func (c *Client) Metadata(ctx context.Context, videoURL string) (*Metadata, error) {
	id, ok := VideoID(videoURL)
	if !ok {
		return nil, fmt.Errorf("not a youtube video url: %s", videoURL)
	}

	query := url.Values{}
	query.Set("url", WatchURL(id))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed returned HTTP %d", resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &meta, nil
}
