package markdown

import (
	"reflect"
	"testing"

	"github.com/dnorberg/vidsum/internal/blocks"
)

func plain(s string) []blocks.TextRun {
	return []blocks.TextRun{{Content: s}}
}

func TestToBlocksClassification(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []blocks.Block
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "blank lines never produce blocks",
			in:   "\n\n   \n",
			want: nil,
		},
		{
			name: "heading levels",
			in:   "# One\n## Two\n### Three",
			want: []blocks.Block{
				blocks.Heading(1, plain("One")),
				blocks.Heading(2, plain("Two")),
				blocks.Heading(3, plain("Three")),
			},
		},
		{
			name: "deep headings collapse to level three",
			in:   "##### X",
			want: []blocks.Block{blocks.Heading(3, plain("X"))},
		},
		{
			name: "hashes without whitespace are a paragraph",
			in:   "#hashtag",
			want: []blocks.Block{blocks.Paragraph(plain("#hashtag"))},
		},
		{
			name: "quote",
			in:   "> wise words",
			want: []blocks.Block{blocks.Quote(plain("wise words"))},
		},
		{
			name: "bullet variants",
			in:   "- a\n* b\n*   c",
			want: []blocks.Block{
				blocks.BulletItem(plain("a")),
				blocks.BulletItem(plain("b")),
				blocks.BulletItem(plain("c")),
			},
		},
		{
			name: "numbered items discard the ordinal",
			in:   "1. first\n7. second",
			want: []blocks.Block{
				blocks.NumberedItem(plain("first")),
				blocks.NumberedItem(plain("second")),
			},
		},
		{
			name: "divider",
			in:   "---",
			want: []blocks.Block{blocks.Divider()},
		},
		{
			name: "paragraph fallback",
			in:   "nothing special here",
			want: []blocks.Block{blocks.Paragraph(plain("nothing special here"))},
		},
		{
			name: "fenced code with language",
			in:   "```go\nfunc main() {\n\tprintln(\"hi\")\n}\n```",
			want: []blocks.Block{
				blocks.CodeBlock("go", "func main() {\n\tprintln(\"hi\")\n}"),
			},
		},
		{
			name: "fenced code without language uses the plain text tag",
			in:   "```\nsome output\n```",
			want: []blocks.Block{
				blocks.CodeBlock("", "some output"),
			},
		},
		{
			name: "code content keeps leading whitespace",
			in:   "```python\n    indented\n```",
			want: []blocks.Block{
				blocks.CodeBlock("python", "    indented"),
			},
		},
		{
			name: "unterminated fence falls through to normal classification",
			in:   "```go\nfunc main() {}",
			want: []blocks.Block{
				blocks.Paragraph(plain("```go")),
				blocks.Paragraph(plain("func main() {}")),
			},
		},
		{
			name: "inline markup inside a list item",
			in:   "- **bold** point",
			want: []blocks.Block{
				blocks.BulletItem([]blocks.TextRun{
					{Content: "bold", Bold: true},
					{Content: " point"},
				}),
			},
		},
		{
			name: "mixed document",
			in:   "# Title\n\nIntro text.\n\n- item\n\n> note",
			want: []blocks.Block{
				blocks.Heading(1, plain("Title")),
				blocks.Paragraph(plain("Intro text.")),
				blocks.BulletItem(plain("item")),
				blocks.Quote(plain("note")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBlocks(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToBlocks(%q)\n got:  %#v\n want: %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHeadingFlatteningShape(t *testing.T) {
	deep := ToBlocks("##### X")
	three := ToBlocks("### X")
	if len(deep) != 1 || len(three) != 1 {
		t.Fatalf("expected one block each, got %d and %d", len(deep), len(three))
	}
	if !reflect.DeepEqual(deep[0], three[0]) {
		t.Errorf("level 5 and level 3 headings should produce identical blocks:\n%#v\n%#v", deep[0], three[0])
	}
}
