// Package summarizer produces markdown video summaries through the Gemini
// API. Retry and quota handling stay inside this package; the conversion
// engine downstream never sees transport concerns.
package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/dnorberg/vidsum/internal/youtube"
)

const defaultModel = "gemini-3-flash-preview"

// systemInstruction pins down the markdown dialect the conversion engine
// expects: headings, lists, tables, fenced code, and bracketed [MM:SS]
// timestamps that the enrichment pass turns into deep links.
const systemInstruction = `You summarize YouTube videos into well-structured markdown notes.

Rules:
- Start with a one-paragraph overview, then sections with ## headings.
- Use bullet lists for key points and tables for comparisons.
- Reference moments in the video with bracketed timestamps like [8:05] or
  ranges like [8:05-8:24]. Use plain [MM:SS] or [HH:MM:SS]; never invent
  timestamps past the video length.
- Use fenced code blocks with a language tag for any code shown.
- Do not wrap the whole answer in a code fence.`

// Summarizer generates markdown summaries for videos.
type Summarizer struct {
	apiKey string
	model  string
	retry  RetryConfig
	debug  bool
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel overrides the default Gemini model.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		if model != "" {
			s.model = model
		}
	}
}

// WithRetryConfig overrides the default retry policy.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(s *Summarizer) { s.retry = cfg }
}

// WithDebug echoes request/response summaries to stderr.
func WithDebug(debug bool) Option {
	return func(s *Summarizer) { s.debug = debug }
}

func New(apiKey string, opts ...Option) *Summarizer {
	s := &Summarizer{
		apiKey: apiKey,
		model:  defaultModel,
		retry:  DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the model the summarizer will request.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize asks Gemini for a markdown summary of the video. meta may be nil
// when metadata lookup failed; the prompt then carries only the URL.
func (s *Summarizer) Summarize(ctx context.Context, videoURL string, meta *youtube.Metadata) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	prompt := buildPrompt(videoURL, meta)
	if s.debug {
		fmt.Fprintln(os.Stderr, "=== DEBUG: Gemini Summarize Request ===")
		fmt.Fprintf(os.Stderr, "Model: %s\n", s.model)
		fmt.Fprintf(os.Stderr, "Prompt: %s\n", truncate(prompt, 200))
		fmt.Fprintln(os.Stderr, "=======================================")
	}

	var summary string
	err := withRetry(ctx, s.retry, func(ctx context.Context) error {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: s.apiKey})
		if err != nil {
			return fmt.Errorf("failed to create gemini client: %w", err)
		}

		config := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}
		contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

		resp, err := client.Models.GenerateContent(ctx, s.model, contents, config)
		if err != nil {
			return fmt.Errorf("gemini API error: %w", err)
		}

		summary = collectText(resp)
		if summary == "" {
			return fmt.Errorf("gemini returned an empty response")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if s.debug {
		fmt.Fprintf(os.Stderr, "=== DEBUG: Gemini response (%d chars) ===\n", len(summary))
	}
	return summary, nil
}

// buildPrompt assembles the user prompt from the video URL and whatever
// metadata is available.
func buildPrompt(videoURL string, meta *youtube.Metadata) string {
	var b strings.Builder
	b.WriteString("Summarize this YouTube video.\n")
	b.WriteString("URL: " + videoURL + "\n")
	if meta != nil {
		if meta.Title != "" {
			b.WriteString("Title: " + meta.Title + "\n")
		}
		if meta.Author != "" {
			b.WriteString("Channel: " + meta.Author + "\n")
		}
	}
	return b.String()
}

// collectText concatenates the text parts of the first candidate, skipping
// internal thought parts.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
