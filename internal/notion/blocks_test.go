package notion

import (
	"strings"
	"testing"

	"github.com/jomei/notionapi"

	"github.com/takak2166/cmsimport/internal/document"
)

func TestConvertDocument(t *testing.T) {
	text := func(s string) *document.Text { return &document.Text{Text: s} }

	doc := document.Document{
		&document.Element{Type: document.BlockHeading, Level: 1, Children: []document.Node{text("Title")}},
		&document.Element{Type: document.BlockHeading, Level: 5, Children: []document.Node{text("Small")}},
		&document.Element{Type: document.BlockParagraph, Children: []document.Node{
			text("Read "),
			&document.Element{Type: document.BlockLink, Href: "https://x.test", Children: []document.Node{
				&document.Text{Text: "this", Marks: document.Marks{Bold: true}},
			}},
		}},
		&document.Element{Type: document.BlockOrderedList, Children: []document.Node{
			&document.Element{Type: document.BlockListItem, Children: []document.Node{text("one")}},
			&document.Element{Type: document.BlockListItem, Children: []document.Node{text("two")}},
		}},
		&document.Element{Type: document.BlockBlockquote, Children: []document.Node{text("quoted")}},
		&document.Element{Type: document.BlockCode, Children: []document.Node{text("x := 1")}},
		&document.Element{Type: document.BlockDivider, Children: []document.Node{text("")}},
		&document.Element{Type: document.BlockParagraph, Children: []document.Node{document.NewImageBlock("img-1", "")}},
		&document.Element{Type: document.BlockParagraph, Children: []document.Node{text("")}},
	}

	blocks := ConvertDocument(doc)

	wantTypes := []notionapi.BlockType{
		notionapi.BlockTypeHeading1,
		notionapi.BlockTypeHeading3,
		notionapi.BlockTypeParagraph,
		notionapi.BlockTypeNumberedListItem,
		notionapi.BlockTypeNumberedListItem,
		notionapi.BlockTypeQuote,
		notionapi.BlockTypeCode,
		notionapi.BlockTypeDivider,
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("Expected %d blocks, got %d", len(wantTypes), len(blocks))
	}
	for i, b := range blocks {
		if b.GetType() != wantTypes[i] {
			t.Errorf("Block %d: expected %s, got %s", i, wantTypes[i], b.GetType())
		}
	}

	para, ok := blocks[2].(*notionapi.ParagraphBlock)
	if !ok {
		t.Fatalf("Expected paragraph block, got %T", blocks[2])
	}
	rt := para.Paragraph.RichText
	if len(rt) != 2 {
		t.Fatalf("Expected 2 rich text objects, got %d", len(rt))
	}
	if rt[1].Text.Link == nil || rt[1].Text.Link.Url != "https://x.test" {
		t.Errorf("Expected link on second rich text, got %+v", rt[1].Text)
	}
	if rt[1].Annotations == nil || !rt[1].Annotations.Bold {
		t.Error("Expected bold annotation on link text")
	}
	if rt[0].Annotations != nil {
		t.Error("Expected no annotations on plain text")
	}
}

func TestChunks(t *testing.T) {
	long := strings.Repeat("я", 4500)
	parts := chunks(long, maxTextLength)
	if len(parts) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(parts))
	}
	if strings.Join(parts, "") != long {
		t.Error("Chunks do not add up to the input")
	}

	if got := chunks("short", maxTextLength); len(got) != 1 || got[0] != "short" {
		t.Errorf("Unexpected chunks for short input: %v", got)
	}
}
