package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/takak2166/cmsimport/internal/logger"
)

var exportFormatting = strings.NewReplacer("\t", "", "\r\n", " ")

// ConvertHTML converts a legacy HTML fragment into a document. Images are
// resolved through index, which may be nil. The result is never empty.
func ConvertHTML(src string, index ImageIndex) Document {
	nodes, err := deserializeHTML(src, index)
	if err != nil {
		logger.Warn("Failed to parse HTML content", logger.Fields{"error": err.Error()})
		return Empty()
	}

	doc := wrapInline(nodes)
	if len(doc) == 0 {
		return Empty()
	}
	return doc
}

// deserializeHTML wraps src in a body element and returns the children of
// the resulting fragment.
func deserializeHTML(src string, index ImageIndex) ([]Node, error) {
	cleaned := exportFormatting.Replace(src)

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(cleaned), root)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	d := &deserializer{root: root, index: index}
	var out []Node
	for _, n := range d.deserialize(root, state{}) {
		if f, ok := n.(*Fragment); ok {
			out = append(out, f.Children...)
		}
	}
	return out, nil
}

// wrapInline puts runs of top-level text and links into paragraphs so every
// top-level node is a block. Runs holding only whitespace are dropped.
func wrapInline(nodes []Node) Document {
	out := make(Document, 0, len(nodes))
	var run []Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		if strings.TrimSpace(PlainText(run)) != "" || hasLink(run) {
			children := normalize(run)
			if len(children) == 1 {
				if t, ok := children[0].(*Text); ok {
					t.Text = strings.TrimSpace(t.Text)
				}
			}
			out = append(out, &Element{Type: BlockParagraph, Children: children})
		}
		run = nil
	}

	for _, n := range nodes {
		if isInlineNode(n) {
			run = append(run, n)
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}

func isInlineNode(n Node) bool {
	switch v := n.(type) {
	case *Text:
		return true
	case *Element:
		return v.Type == BlockLink
	}
	return false
}

func hasLink(nodes []Node) bool {
	for _, n := range nodes {
		if e, ok := n.(*Element); ok && e.Type == BlockLink {
			return true
		}
	}
	return false
}
