// Package blocks defines the structured document model produced by the
// markdown conversion engine. A Document is a flat ordered list of Blocks;
// tables are the only two-level structure (rows of cells). All values are
// constructed once and never mutated afterwards.
package blocks

// Kind identifies the structural role of a Block.
type Kind string

const (
	KindHeading      Kind = "heading"
	KindParagraph    Kind = "paragraph"
	KindBulletItem   Kind = "bulletItem"
	KindNumberedItem Kind = "numberedItem"
	KindQuote        Kind = "quote"
	KindCodeBlock    Kind = "codeBlock"
	KindDivider      Kind = "divider"
	KindTable        Kind = "table"
)

// PlainTextLanguage is the language tag used for fenced code blocks that
// carry no explicit language.
const PlainTextLanguage = "plain text"

// TextRun is a minimal span of text sharing one formatting/link state.
// Code runs carry no other annotations; code spans are taken verbatim.
type TextRun struct {
	Content       string `json:"content" yaml:"content"`
	Bold          bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Code          bool   `json:"code,omitempty" yaml:"code,omitempty"`
	LinkURL       string `json:"linkUrl,omitempty" yaml:"linkUrl,omitempty"`
}

// Row is one table row. Each cell is itself a rich-text run sequence.
type Row struct {
	IsHeader bool        `json:"isHeader" yaml:"isHeader"`
	Cells    [][]TextRun `json:"cells" yaml:"cells"`
}

// Block is a tagged variant over the block kinds. Level is set for headings
// only (always 1-3), Language and Content for code blocks only, Rows for
// tables only. Every other kind carries its rich text in RichText.
type Block struct {
	Kind     Kind      `json:"kind" yaml:"kind"`
	Level    int       `json:"level,omitempty" yaml:"level,omitempty"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string    `json:"content,omitempty" yaml:"content,omitempty"`
	RichText []TextRun `json:"richText,omitempty" yaml:"richText,omitempty"`
	Rows     []Row     `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// Document is an ordered block sequence.
type Document []Block

// Heading returns a heading block. Levels beyond 3 collapse to 3; the output
// model has no deeper heading kinds.
func Heading(level int, text []TextRun) Block {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return Block{Kind: KindHeading, Level: level, RichText: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text []TextRun) Block {
	return Block{Kind: KindParagraph, RichText: text}
}

// BulletItem returns a bulleted list item block.
func BulletItem(text []TextRun) Block {
	return Block{Kind: KindBulletItem, RichText: text}
}

// NumberedItem returns a numbered list item block. The source ordinal is
// discarded; renderers number items by position.
func NumberedItem(text []TextRun) Block {
	return Block{Kind: KindNumberedItem, RichText: text}
}

// Quote returns a block quote.
func Quote(text []TextRun) Block {
	return Block{Kind: KindQuote, RichText: text}
}

// CodeBlock returns a fenced code block. Content is raw and unparsed;
// indentation is preserved because code semantics depend on it.
func CodeBlock(language, content string) Block {
	if language == "" {
		language = PlainTextLanguage
	}
	return Block{Kind: KindCodeBlock, Language: language, Content: content}
}

// Divider returns a horizontal rule block.
func Divider() Block {
	return Block{Kind: KindDivider}
}

// Table returns a table block. The first row is expected to be the header.
func Table(rows []Row) Block {
	return Block{Kind: KindTable, Rows: rows}
}

// PlainText reconstructs the block's text with markup delimiters removed.
// Code blocks return their raw content; dividers return "".
func (b Block) PlainText() string {
	switch b.Kind {
	case KindCodeBlock:
		return b.Content
	case KindDivider:
		return ""
	case KindTable:
		var out string
		for _, row := range b.Rows {
			for _, cell := range row.Cells {
				for _, run := range cell {
					out += run.Content
				}
			}
		}
		return out
	default:
		var out string
		for _, run := range b.RichText {
			out += run.Content
		}
		return out
	}
}
