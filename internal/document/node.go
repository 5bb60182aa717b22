// Package document models the Slate-style rich text tree stored in content
// fields and converts legacy HTML into it.
package document

// BlockKind is the semantic type of an Element.
type BlockKind string

const (
	BlockParagraph     BlockKind = "paragraph"
	BlockListItem      BlockKind = "list-item"
	BlockUnorderedList BlockKind = "unordered-list"
	BlockOrderedList   BlockKind = "ordered-list"
	BlockBlockquote    BlockKind = "blockquote"
	BlockCode          BlockKind = "code"
	BlockHeading       BlockKind = "heading"
	BlockFigure        BlockKind = "figure"
	BlockFigcaption    BlockKind = "figcaption"
	BlockDivider       BlockKind = "divider"
	BlockTable         BlockKind = "table"
	BlockTableHead     BlockKind = "table-head"
	BlockTableRow      BlockKind = "table-row"
	BlockTableCell     BlockKind = "table-cell"
	BlockCenter        BlockKind = "center"
	BlockLink          BlockKind = "link"
)

// AllBlockKinds lists every BlockKind.
var AllBlockKinds = []BlockKind{
	BlockParagraph, BlockListItem, BlockUnorderedList, BlockOrderedList,
	BlockBlockquote, BlockCode, BlockHeading, BlockFigure, BlockFigcaption,
	BlockDivider, BlockTable, BlockTableHead, BlockTableRow, BlockTableCell,
	BlockCenter, BlockLink,
}

// MarkKind is a boolean inline text attribute.
type MarkKind string

const (
	MarkBold          MarkKind = "bold"
	MarkItalic        MarkKind = "italic"
	MarkUnderline     MarkKind = "underline"
	MarkStrikethrough MarkKind = "strikethrough"
	MarkCode          MarkKind = "code"
)

// AllMarkKinds lists every MarkKind.
var AllMarkKinds = []MarkKind{MarkBold, MarkItalic, MarkUnderline, MarkStrikethrough, MarkCode}

// Marks is the set of marks applied to a Text leaf. It is a plain value:
// With returns a modified copy and never touches the receiver.
type Marks struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
}

// With returns m with kind switched on.
func (m Marks) With(kind MarkKind) Marks {
	switch kind {
	case MarkBold:
		m.Bold = true
	case MarkItalic:
		m.Italic = true
	case MarkUnderline:
		m.Underline = true
	case MarkStrikethrough:
		m.Strikethrough = true
	case MarkCode:
		m.Code = true
	}
	return m
}

// IsZero reports whether no mark is set.
func (m Marks) IsZero() bool {
	return m == Marks{}
}

// Node is one of *Element, *Text, *ComponentBlock, *InlineProp or *Fragment.
type Node interface {
	node()
}

// Document is the ordered list of top-level nodes stored in a content field.
type Document []Node

// Fragment is the root container produced for the wrapper element.
type Fragment struct {
	Children []Node
}

// Element is a block or inline structural node.
type Element struct {
	Type     BlockKind `json:"type"`
	Level    int       `json:"level,omitempty"`
	Href     string    `json:"href,omitempty"`
	Children []Node    `json:"children"`
}

// Text is a leaf carrying text and marks.
type Text struct {
	Text string `json:"text"`
	Marks
}

// Ref points at another entity by id.
type Ref struct {
	ID string `json:"id"`
}

// ImageProps are the props of the image component block.
type ImageProps struct {
	ImageAlt string `json:"imageAlt"`
	Image    *Ref   `json:"image"`
	ImageRel *Ref   `json:"imageRel"`
}

// ComponentImage is the only component block produced by the converter.
const ComponentImage = "image"

// ComponentBlock embeds another entity into the document.
type ComponentBlock struct {
	Component string
	Props     ImageProps
	Children  []Node
}

// InlineProp is the placeholder child a component block must carry.
type InlineProp struct {
	Children []Node
}

// lineBreak is a pending "\n" that is folded into the nearest Text leaf.
type lineBreak struct {
	marks Marks
}

func (*Fragment) node()       {}
func (*Element) node()        {}
func (*Text) node()           {}
func (*ComponentBlock) node() {}
func (*InlineProp) node()     {}
func (lineBreak) node()       {}

// NewImageBlock builds the image embed for an image entity id.
func NewImageBlock(imageID, alt string) *ComponentBlock {
	return &ComponentBlock{
		Component: ComponentImage,
		Props: ImageProps{
			ImageAlt: alt,
			Image:    &Ref{ID: imageID},
			ImageRel: &Ref{ID: imageID},
		},
		Children: []Node{&InlineProp{Children: []Node{&Text{}}}},
	}
}

// Empty is the content of a document with nothing in it.
func Empty() Document {
	return Document{&Element{Type: BlockParagraph, Children: []Node{&Text{}}}}
}

// PlainText concatenates the text of every leaf under nodes.
func PlainText(nodes []Node) string {
	var out []byte
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *Text:
				out = append(out, v.Text...)
			case *Element:
				walk(v.Children)
			case *Fragment:
				walk(v.Children)
			}
		}
	}
	walk(nodes)
	return string(out)
}
