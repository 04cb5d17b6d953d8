package notion

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dnorberg/vidsum/internal/blocks"
	"github.com/dnorberg/vidsum/internal/markdown"
)

func TestToAPIBlockKinds(t *testing.T) {
	tests := []struct {
		name     string
		in       blocks.Block
		wantType string
	}{
		{"paragraph", blocks.Paragraph(nil), "paragraph"},
		{"heading 1", blocks.Heading(1, nil), "heading_1"},
		{"heading 2", blocks.Heading(2, nil), "heading_2"},
		{"heading 3", blocks.Heading(3, nil), "heading_3"},
		{"bullet", blocks.BulletItem(nil), "bulleted_list_item"},
		{"numbered", blocks.NumberedItem(nil), "numbered_list_item"},
		{"quote", blocks.Quote(nil), "quote"},
		{"code", blocks.CodeBlock("go", "x := 1"), "code"},
		{"divider", blocks.Divider(), "divider"},
		{"table", blocks.Table(nil), "table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toAPIBlock(tt.in); got.Type != tt.wantType {
				t.Errorf("type = %s, want %s", got.Type, tt.wantType)
			}
		})
	}
}

func TestRichTextMapping(t *testing.T) {
	runs := []blocks.TextRun{
		{Content: "plain"},
		{Content: "bold", Bold: true},
		{Content: "linked", LinkURL: "http://a", Italic: true},
	}
	got := toRichText(runs)
	if len(got) != 3 {
		t.Fatalf("expected 3 rich text objects, got %d", len(got))
	}
	if got[0].Annotations != nil {
		t.Error("plain run should carry no annotations object")
	}
	if got[1].Annotations == nil || !got[1].Annotations.Bold {
		t.Error("bold annotation lost")
	}
	if got[2].Text.Link == nil || got[2].Text.Link.URL != "http://a" {
		t.Error("link lost")
	}
	if got[2].Annotations == nil || !got[2].Annotations.Italic {
		t.Error("italic annotation lost on linked run")
	}
}

func TestTableMapping(t *testing.T) {
	doc := markdown.ToBlocks("| A | B |\n| --- | --- |\n| 1 | 2 |")
	if len(doc) != 1 {
		t.Fatalf("expected one table block, got %d", len(doc))
	}
	api := toAPIBlock(doc[0])
	if api.Table == nil {
		t.Fatal("table body missing")
	}
	if api.Table.TableWidth != 2 {
		t.Errorf("table_width = %d, want 2", api.Table.TableWidth)
	}
	if !api.Table.HasColumnHeader {
		t.Error("has_column_header should be set")
	}
	if len(api.Table.Children) != 2 {
		t.Errorf("expected 2 row children, got %d", len(api.Table.Children))
	}
	for _, row := range api.Table.Children {
		if row.Type != "table_row" || row.TableRow == nil {
			t.Errorf("row mapped badly: %+v", row)
		}
	}
}

func TestCodeBlockPayloadShape(t *testing.T) {
	api := toAPIBlock(blocks.CodeBlock("golang", "fmt.Println(1)"))
	raw, err := json.Marshal(api)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, `"language":"go"`) {
		t.Errorf("language tag not normalized: %s", s)
	}
	if !strings.Contains(s, `"content":"fmt.Println(1)"`) {
		t.Errorf("code content lost: %s", s)
	}
	if strings.Contains(s, `"paragraph"`) {
		t.Errorf("unexpected paragraph payload: %s", s)
	}
}

func TestDividerPayloadShape(t *testing.T) {
	raw, err := json.Marshal(toAPIBlock(blocks.Divider()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"divider":{}`) {
		t.Errorf("divider should marshal an empty object: %s", raw)
	}
}
