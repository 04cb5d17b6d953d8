package markdown

import (
	"reflect"
	"testing"

	"github.com/dnorberg/vidsum/internal/blocks"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []blocks.TextRun
	}{
		{
			name: "empty input yields no runs",
			in:   "",
			want: nil,
		},
		{
			name: "plain text is a single run",
			in:   "just some words",
			want: []blocks.TextRun{{Content: "just some words"}},
		},
		{
			name: "bold",
			in:   "a **b** c",
			want: []blocks.TextRun{
				{Content: "a "},
				{Content: "b", Bold: true},
				{Content: " c"},
			},
		},
		{
			name: "italic",
			in:   "*lean*",
			want: []blocks.TextRun{{Content: "lean", Italic: true}},
		},
		{
			name: "strikethrough",
			in:   "~~gone~~",
			want: []blocks.TextRun{{Content: "gone", Strikethrough: true}},
		},
		{
			name: "inline code is verbatim",
			in:   "run `go **test**` now",
			want: []blocks.TextRun{
				{Content: "run "},
				{Content: "go **test**", Code: true},
				{Content: " now"},
			},
		},
		{
			name: "plain link",
			in:   "[docs](http://a)",
			want: []blocks.TextRun{{Content: "docs", LinkURL: "http://a"}},
		},
		{
			name: "bold link text",
			in:   "[**x**](http://a)",
			want: []blocks.TextRun{{Content: "x", Bold: true, LinkURL: "http://a"}},
		},
		{
			name: "italic link text",
			in:   "[*x*](http://a)",
			want: []blocks.TextRun{{Content: "x", Italic: true, LinkURL: "http://a"}},
		},
		{
			name: "strikethrough link text",
			in:   "[~~x~~](http://a)",
			want: []blocks.TextRun{{Content: "x", Strikethrough: true, LinkURL: "http://a"}},
		},
		{
			name: "link inside bold propagates the annotation",
			in:   "**see [here](http://a) first**",
			want: []blocks.TextRun{
				{Content: "see ", Bold: true},
				{Content: "here", Bold: true, LinkURL: "http://a"},
				{Content: " first", Bold: true},
			},
		},
		{
			name: "link inside strikethrough",
			in:   "~~old [ref](http://b)~~",
			want: []blocks.TextRun{
				{Content: "old ", Strikethrough: true},
				{Content: "ref", Strikethrough: true, LinkURL: "http://b"},
			},
		},
		{
			name: "italic inside bold",
			in:   "**a *b* c**",
			want: []blocks.TextRun{
				{Content: "a ", Bold: true},
				{Content: "b", Bold: true, Italic: true},
				{Content: " c", Bold: true},
			},
		},
		{
			name: "unclosed bold is literal text",
			in:   "2 ** 3",
			want: []blocks.TextRun{{Content: "2 ** 3"}},
		},
		{
			name: "unclosed bracket is literal text",
			in:   "a [b c",
			want: []blocks.TextRun{{Content: "a [b c"}},
		},
		{
			name: "bracket without url part is literal",
			in:   "array[0] = 1",
			want: []blocks.TextRun{{Content: "array[0] = 1"}},
		},
		{
			name: "adjacent plain chars coalesce around matches",
			in:   "x*y*z",
			want: []blocks.TextRun{
				{Content: "x"},
				{Content: "y", Italic: true},
				{Content: "z"},
			},
		},
		{
			name: "two links in one line",
			in:   "[a](u1) and [b](u2)",
			want: []blocks.TextRun{
				{Content: "a", LinkURL: "u1"},
				{Content: " and "},
				{Content: "b", LinkURL: "u2"},
			},
		},
		{
			name: "code inside bold stays unannotated",
			in:   "**a `b` c**",
			want: []blocks.TextRun{
				{Content: "a ", Bold: true},
				{Content: "b", Code: true},
				{Content: " c", Bold: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q)\n got:  %#v\n want: %#v", tt.in, got, tt.want)
			}
		})
	}
}

// Markup delimiters are removed, never added: total run content never
// exceeds the input length.
func TestParseInlineNeverAddsCharacters(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"**bold** and *italic* and ~~strike~~",
		"[**x**](http://a) `code` tail",
		"broken ** [ ~~ ` * mess",
		"**a *b* [c](d) e**",
	}
	for _, in := range inputs {
		total := 0
		for _, run := range ParseInline(in) {
			total += len(run.Content)
		}
		if total > len(in) {
			t.Errorf("ParseInline(%q): run content length %d exceeds input length %d", in, total, len(in))
		}
	}
}
