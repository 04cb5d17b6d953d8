// Package notion pushes block documents into the Notion API. The mapping
// from the internal block model onto Notion's JSON shapes is a 1:1
// passthrough; everything interesting happened earlier in the pipeline.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dnorberg/vidsum/internal/blocks"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	defaultVersion = "2022-06-28"

	// The API rejects requests with more than 100 children.
	maxChildrenPerRequest = 100
)

// Client is a minimal Notion API client covering page creation and block
// appends.
type Client struct {
	httpClient *http.Client
	token      string
	version    string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithVersion overrides the Notion-Version header.
func WithVersion(version string) ClientOption {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token:   token,
		version: defaultVersion,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Page describes a created page.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error %d (%s): %s", e.Status, e.Code, e.Message)
}

// CreatePage creates a page titled title under the given parent page and
// appends the document as its children, chunked to the API limit.
func (c *Client) CreatePage(ctx context.Context, parentPageID, title string, doc []blocks.Block) (*Page, error) {
	children := toAPIBlocks(doc)

	first := children
	if len(first) > maxChildrenPerRequest {
		first = first[:maxChildrenPerRequest]
	}

	payload := map[string]any{
		"parent": map[string]string{"page_id": parentPageID},
		"properties": map[string]any{
			"title": map[string]any{
				"title": []richText{{Type: "text", Text: textContent{Content: title}}},
			},
		},
		"children": first,
	}

	var page Page
	if err := c.post(ctx, "/pages", payload, &page); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	for start := maxChildrenPerRequest; start < len(children); start += maxChildrenPerRequest {
		end := start + maxChildrenPerRequest
		if end > len(children) {
			end = len(children)
		}
		if err := c.appendChildren(ctx, page.ID, children[start:end]); err != nil {
			return nil, err
		}
	}
	return &page, nil
}

// AppendBlocks appends the document to an existing page or block.
func (c *Client) AppendBlocks(ctx context.Context, blockID string, doc []blocks.Block) error {
	children := toAPIBlocks(doc)
	for start := 0; start < len(children); start += maxChildrenPerRequest {
		end := start + maxChildrenPerRequest
		if end > len(children) {
			end = len(children)
		}
		if err := c.appendChildren(ctx, blockID, children[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) appendChildren(ctx context.Context, blockID string, children []apiBlock) error {
	payload := map[string]any{"children": children}
	if err := c.patch(ctx, "/blocks/"+blockID+"/children", payload, nil); err != nil {
		return fmt.Errorf("append children: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, "POST", path, payload, out)
}

func (c *Client) patch(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, "PATCH", path, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
