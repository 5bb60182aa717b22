package document

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/takak2166/cmsimport/internal/filename"
)

// ImageIndex maps a normalized filename to the id of an imported image.
type ImageIndex map[string]string

// Add registers an image under the normalized form of name.
func (idx ImageIndex) Add(name, id string) {
	if key := filename.Normalize(name); key != "" {
		idx[key] = id
	}
}

// Lookup resolves an <img src> value to an image id.
func (idx ImageIndex) Lookup(src string) (string, bool) {
	key := filename.Normalize(src)
	if key == "" {
		return "", false
	}
	id, ok := idx[key]
	return id, ok
}

var whitespaceRun = regexp.MustCompile(`[ \t\n\f\r]+`)

// state travels down the recursion by value.
type state struct {
	marks        Marks
	preformatted bool
}

type deserializer struct {
	root  *html.Node
	index ImageIndex
}

// deserialize converts n into zero or more nodes. An empty result drops n.
func (d *deserializer) deserialize(n *html.Node, st state) []Node {
	switch n.Type {
	case html.TextNode:
		return d.text(n, st)
	case html.ElementNode:
	default:
		return nil
	}

	tag := strings.ToLower(n.Data)
	switch tag {
	case "br":
		if n.Parent == d.root {
			return nil
		}
		return []Node{lineBreak{marks: st.marks}}
	case "img":
		return d.image(n)
	}

	if kind, ok := markTags[tag]; ok {
		st.marks = st.marks.With(kind)
	}
	if tag == "pre" {
		st.preformatted = true
	}

	children := d.children(n, st)

	if level, ok := headingLevels[tag]; ok {
		return []Node{d.heading(level, children, st.marks)}
	}

	if kind, ok := blockTags[tag]; ok {
		children = withFallback(normalize(children), st.marks)
		if kind == BlockParagraph && len(children) == 1 {
			if t, ok := children[0].(*Text); ok {
				t.Text = strings.TrimSpace(t.Text)
			}
		}
		return []Node{&Element{Type: kind, Children: children}}
	}

	switch tag {
	case "body":
		if n == d.root {
			return []Node{&Fragment{Children: normalize(children)}}
		}
	case anchorTag:
		if href := strings.TrimSpace(attr(n, "href")); href != "" {
			return []Node{&Element{Type: BlockLink, Href: href, Children: withFallback(normalize(children), st.marks)}}
		}
	}

	return withFallback(children, st.marks)
}

func (d *deserializer) children(n *html.Node, st state) []Node {
	var out []Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, d.deserialize(c, st)...)
	}
	return out
}

func (d *deserializer) text(n *html.Node, st state) []Node {
	content := n.Data

	if n.Parent == d.root {
		content = whitespaceRun.ReplaceAllString(content, " ")
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return []Node{&Text{Text: content, Marks: st.marks}}
	}

	if st.preformatted {
		if content == "" {
			return nil
		}
		return []Node{&Text{Text: content, Marks: st.marks}}
	}

	if strings.TrimSpace(content) == "" {
		// a lone space between two inline siblings still separates words
		if betweenInline(n) {
			return []Node{&Text{Text: " ", Marks: st.marks}}
		}
		return nil
	}

	content = whitespaceRun.ReplaceAllString(content, " ")
	if n.PrevSibling == nil || breaksLine(n.PrevSibling) {
		content = strings.TrimLeft(content, " ")
	}
	return []Node{&Text{Text: content, Marks: st.marks}}
}

func (d *deserializer) heading(level int, children []Node, marks Marks) *Element {
	kept := children[:0]
	for _, c := range children {
		switch v := c.(type) {
		case lineBreak:
			continue
		case *Text:
			if v.Text == "\n" {
				continue
			}
		}
		kept = append(kept, c)
	}
	kept = withFallback(normalize(kept), marks)
	if t, ok := kept[0].(*Text); ok {
		t.Text = strings.TrimSpace(strings.ReplaceAll(t.Text, "\n", ""))
	}
	return &Element{Type: BlockHeading, Level: level, Children: kept}
}

// image resolves an <img> against the index. Unknown images are dropped so no
// embed ever points at a missing entity.
func (d *deserializer) image(n *html.Node) []Node {
	src := attr(n, "src")
	if src == "" || d.index == nil {
		return nil
	}
	id, ok := d.index.Lookup(src)
	if !ok {
		return nil
	}
	return []Node{NewImageBlock(id, attr(n, "alt"))}
}

// normalize folds line breaks into the preceding Text leaf and merges
// neighbouring Text leaves that carry identical marks.
func normalize(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		var prev *Text
		if len(out) > 0 {
			prev, _ = out[len(out)-1].(*Text)
		}
		switch v := n.(type) {
		case lineBreak:
			if prev != nil {
				prev.Text += "\n"
				continue
			}
			out = append(out, &Text{Text: "\n", Marks: v.marks})
		case *Text:
			if prev != nil && prev.Marks == v.Marks {
				prev.Text += v.Text
				continue
			}
			out = append(out, v)
		default:
			out = append(out, n)
		}
	}
	return out
}

// withFallback guarantees at least one child.
func withFallback(children []Node, marks Marks) []Node {
	if len(children) == 0 {
		return []Node{&Text{Marks: marks}}
	}
	return children
}

func betweenInline(n *html.Node) bool {
	return isInline(n.PrevSibling) && isInline(n.NextSibling)
}

// breaksLine reports whether n ends the current line: a <br>, a <div> or a
// block-level tag.
func breaksLine(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	tag := strings.ToLower(n.Data)
	if _, ok := blockTags[tag]; ok {
		return true
	}
	return tag == "br" || tag == "div"
}

func isInline(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	tag := strings.ToLower(n.Data)
	if _, ok := blockTags[tag]; ok {
		return false
	}
	return tag != "br" && tag != "img" && tag != "div"
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
