package notion

import (
	"strings"
	"unicode/utf8"

	"github.com/jomei/notionapi"

	"github.com/takak2166/cmsimport/internal/document"
)

// ConvertDocument converts a document to Notion blocks. Image embeds and
// blocks without text are skipped.
func ConvertDocument(doc document.Document) []notionapi.Block {
	var blocks []notionapi.Block
	for _, n := range doc {
		blocks = append(blocks, convertNode(n)...)
	}
	return blocks
}

func convertNode(n document.Node) []notionapi.Block {
	switch v := n.(type) {
	case *document.Fragment:
		return ConvertDocument(v.Children)
	case *document.Text:
		if strings.TrimSpace(v.Text) == "" {
			return nil
		}
		return []notionapi.Block{paragraphBlock(richText([]document.Node{v}, ""))}
	case *document.Element:
		return convertElement(v)
	}
	return nil
}

func convertElement(e *document.Element) []notionapi.Block {
	switch e.Type {
	case document.BlockHeading:
		rt := richText(e.Children, "")
		if len(rt) == 0 {
			return nil
		}
		return []notionapi.Block{headingBlock(rt, e.Level)}
	case document.BlockUnorderedList, document.BlockOrderedList:
		var blocks []notionapi.Block
		for _, child := range e.Children {
			item, ok := child.(*document.Element)
			if !ok || item.Type != document.BlockListItem {
				blocks = append(blocks, convertNode(child)...)
				continue
			}
			rt := richText(item.Children, "")
			if len(rt) == 0 {
				continue
			}
			blocks = append(blocks, listItemBlock(rt, e.Type == document.BlockOrderedList))
		}
		return blocks
	case document.BlockListItem:
		rt := richText(e.Children, "")
		if len(rt) == 0 {
			return nil
		}
		return []notionapi.Block{listItemBlock(rt, false)}
	case document.BlockBlockquote:
		rt := richText(e.Children, "")
		if len(rt) == 0 {
			return nil
		}
		return []notionapi.Block{quoteBlock(rt)}
	case document.BlockCode:
		content := document.PlainText(e.Children)
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return []notionapi.Block{codeBlock(content)}
	case document.BlockDivider:
		return []notionapi.Block{dividerBlock()}
	case document.BlockTable, document.BlockTableHead, document.BlockTableRow,
		document.BlockFigure, document.BlockCenter:
		if hasBlockChild(e.Children) {
			return ConvertDocument(e.Children)
		}
	}

	rt := richText(e.Children, e.Href)
	if len(rt) == 0 {
		return nil
	}
	return []notionapi.Block{paragraphBlock(rt)}
}

func hasBlockChild(nodes []document.Node) bool {
	for _, n := range nodes {
		if e, ok := n.(*document.Element); ok && e.Type != document.BlockLink {
			return true
		}
	}
	return false
}

// richText flattens inline content. Links set href on the text they wrap.
func richText(nodes []document.Node, href string) []notionapi.RichText {
	var out []notionapi.RichText
	for _, n := range nodes {
		switch v := n.(type) {
		case *document.Text:
			if v.Text == "" {
				continue
			}
			for _, chunk := range chunks(v.Text, maxTextLength) {
				out = append(out, textObject(chunk, v.Marks, href))
			}
		case *document.Element:
			link := href
			if v.Type == document.BlockLink {
				link = v.Href
			}
			out = append(out, richText(v.Children, link)...)
		}
	}
	if len(out) > 0 && strings.TrimSpace(richTextContent(out)) == "" {
		return nil
	}
	return out
}

func textObject(content string, marks document.Marks, href string) notionapi.RichText {
	rt := notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
	if href != "" {
		rt.Text.Link = &notionapi.Link{Url: href}
	}
	if !marks.IsZero() {
		rt.Annotations = &notionapi.Annotations{
			Bold:          marks.Bold,
			Italic:        marks.Italic,
			Underline:     marks.Underline,
			Strikethrough: marks.Strikethrough,
			Code:          marks.Code,
			Color:         notionapi.ColorDefault,
		}
	}
	return rt
}

func plainRichText(content string) []notionapi.RichText {
	var out []notionapi.RichText
	for _, chunk := range chunks(content, maxTextLength) {
		out = append(out, textObject(chunk, document.Marks{}, ""))
	}
	return out
}

// chunks splits s into pieces of at most n runes.
func chunks(s string, n int) []string {
	if utf8.RuneCountInString(s) <= n {
		return []string{s}
	}
	var out []string
	for len(s) > 0 {
		i, count := 0, 0
		for i < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			count++
		}
		out = append(out, s[:i])
		s = s[i:]
	}
	return out
}

func headingBlock(rt []notionapi.RichText, level int) notionapi.Block {
	switch level {
	case 1:
		return &notionapi.Heading1Block{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeHeading1,
			},
			Heading1: notionapi.Heading{RichText: rt},
		}
	case 2:
		return &notionapi.Heading2Block{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeHeading2,
			},
			Heading2: notionapi.Heading{RichText: rt},
		}
	default:
		return &notionapi.Heading3Block{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeHeading3,
			},
			Heading3: notionapi.Heading{RichText: rt},
		}
	}
}

func listItemBlock(rt []notionapi.RichText, numbered bool) notionapi.Block {
	if numbered {
		return &notionapi.NumberedListItemBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeNumberedListItem,
			},
			NumberedListItem: notionapi.ListItem{RichText: rt},
		}
	}
	return &notionapi.BulletedListItemBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeBulletedListItem,
		},
		BulletedListItem: notionapi.ListItem{RichText: rt},
	}
}

func quoteBlock(rt []notionapi.RichText) notionapi.Block {
	return &notionapi.QuoteBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeQuote,
		},
		Quote: notionapi.Quote{RichText: rt},
	}
}

func codeBlock(content string) notionapi.Block {
	return &notionapi.CodeBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeCode,
		},
		Code: notionapi.Code{
			RichText: plainRichText(content),
			Language: "plain text",
		},
	}
}

func dividerBlock() notionapi.Block {
	return &notionapi.DividerBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeDivider,
		},
		Divider: notionapi.Divider{},
	}
}

func paragraphBlock(rt []notionapi.RichText) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{RichText: rt},
	}
}
