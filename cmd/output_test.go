package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dnorberg/vidsum/internal/markdown"
)

func TestWriteDocumentJSON(t *testing.T) {
	doc := markdown.ToBlocks("# Title\n\nparagraph")

	var buf bytes.Buffer
	if err := writeDocument(&buf, doc, "json"); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(decoded))
	}
	if decoded[0]["kind"] != "heading" || decoded[0]["level"] != float64(1) {
		t.Errorf("unexpected first block: %+v", decoded[0])
	}
	if decoded[1]["kind"] != "paragraph" {
		t.Errorf("unexpected second block: %+v", decoded[1])
	}
}

func TestWriteDocumentYAML(t *testing.T) {
	doc := markdown.ToBlocks("- item")

	var buf bytes.Buffer
	if err := writeDocument(&buf, doc, "yaml"); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "kind: bulletItem") {
		t.Errorf("yaml output missing kind:\n%s", out)
	}
	if !strings.Contains(out, "content: item") {
		t.Errorf("yaml output missing content:\n%s", out)
	}
}

func TestWriteDocumentRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDocument(&buf, nil, "toml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(unset)"},
		{"short", "****"},
		{"sk-abcdefghijklmnop", "sk-a...mnop"},
	}
	for _, tt := range tests {
		if got := redact(tt.in); got != tt.want {
			t.Errorf("redact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
