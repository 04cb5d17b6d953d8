package notion

import "github.com/dnorberg/vidsum/internal/blocks"

// apiBlock is the wire shape of one Notion block. Exactly one of the typed
// payload fields is set, matching Type.
type apiBlock struct {
	Object       string         `json:"object"`
	Type         string         `json:"type"`
	Paragraph    *richTextBody  `json:"paragraph,omitempty"`
	Heading1     *richTextBody  `json:"heading_1,omitempty"`
	Heading2     *richTextBody  `json:"heading_2,omitempty"`
	Heading3     *richTextBody  `json:"heading_3,omitempty"`
	BulletedItem *richTextBody  `json:"bulleted_list_item,omitempty"`
	NumberedItem *richTextBody  `json:"numbered_list_item,omitempty"`
	Quote        *richTextBody  `json:"quote,omitempty"`
	Code         *codeBody      `json:"code,omitempty"`
	Divider      *struct{}      `json:"divider,omitempty"`
	Table        *tableBody     `json:"table,omitempty"`
	TableRow     *tableRowBody  `json:"table_row,omitempty"`
}

type richTextBody struct {
	RichText []richText `json:"rich_text"`
}

type codeBody struct {
	RichText []richText `json:"rich_text"`
	Language string     `json:"language"`
}

type tableBody struct {
	TableWidth      int        `json:"table_width"`
	HasColumnHeader bool       `json:"has_column_header"`
	Children        []apiBlock `json:"children"`
}

type tableRowBody struct {
	Cells [][]richText `json:"cells"`
}

type richText struct {
	Type        string       `json:"type"`
	Text        textContent  `json:"text"`
	Annotations *annotations `json:"annotations,omitempty"`
}

type textContent struct {
	Content string    `json:"content"`
	Link    *textLink `json:"link,omitempty"`
}

type textLink struct {
	URL string `json:"url"`
}

type annotations struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
}

// toAPIBlocks maps the document onto Notion block payloads.
func toAPIBlocks(doc []blocks.Block) []apiBlock {
	out := make([]apiBlock, 0, len(doc))
	for _, b := range doc {
		out = append(out, toAPIBlock(b))
	}
	return out
}

func toAPIBlock(b blocks.Block) apiBlock {
	api := apiBlock{Object: "block"}

	switch b.Kind {
	case blocks.KindHeading:
		body := &richTextBody{RichText: toRichText(b.RichText)}
		switch b.Level {
		case 1:
			api.Type, api.Heading1 = "heading_1", body
		case 2:
			api.Type, api.Heading2 = "heading_2", body
		default:
			api.Type, api.Heading3 = "heading_3", body
		}
	case blocks.KindBulletItem:
		api.Type = "bulleted_list_item"
		api.BulletedItem = &richTextBody{RichText: toRichText(b.RichText)}
	case blocks.KindNumberedItem:
		api.Type = "numbered_list_item"
		api.NumberedItem = &richTextBody{RichText: toRichText(b.RichText)}
	case blocks.KindQuote:
		api.Type = "quote"
		api.Quote = &richTextBody{RichText: toRichText(b.RichText)}
	case blocks.KindCodeBlock:
		api.Type = "code"
		api.Code = &codeBody{
			RichText: []richText{{Type: "text", Text: textContent{Content: b.Content}}},
			Language: NormalizeLanguage(b.Language),
		}
	case blocks.KindDivider:
		api.Type = "divider"
		api.Divider = &struct{}{}
	case blocks.KindTable:
		api.Type = "table"
		api.Table = toTableBody(b.Rows)
	default:
		api.Type = "paragraph"
		api.Paragraph = &richTextBody{RichText: toRichText(b.RichText)}
	}
	return api
}

func toTableBody(rows []blocks.Row) *tableBody {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0].Cells)
	}
	body := &tableBody{
		TableWidth:      width,
		HasColumnHeader: len(rows) > 0 && rows[0].IsHeader,
	}
	for _, row := range rows {
		cells := make([][]richText, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = toRichText(cell)
		}
		body.Children = append(body.Children, apiBlock{
			Object:   "block",
			Type:     "table_row",
			TableRow: &tableRowBody{Cells: cells},
		})
	}
	return body
}

func toRichText(runs []blocks.TextRun) []richText {
	out := make([]richText, 0, len(runs))
	for _, run := range runs {
		rt := richText{
			Type: "text",
			Text: textContent{Content: run.Content},
		}
		if run.LinkURL != "" {
			rt.Text.Link = &textLink{URL: run.LinkURL}
		}
		if run.Bold || run.Italic || run.Strikethrough || run.Code {
			rt.Annotations = &annotations{
				Bold:          run.Bold,
				Italic:        run.Italic,
				Strikethrough: run.Strikethrough,
				Code:          run.Code,
			}
		}
		out = append(out, rt)
	}
	return out
}
