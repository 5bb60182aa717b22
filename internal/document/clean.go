package document

// ClearEmptyElements removes top-level paragraphs and headings that hold
// nothing but one unmarked empty or newline-only text leaf.
func ClearEmptyElements(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, 0, len(doc))
	for _, n := range doc {
		if isEmptyElement(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func isEmptyElement(n Node) bool {
	e, ok := n.(*Element)
	if !ok || (e.Type != BlockParagraph && e.Type != BlockHeading) || len(e.Children) != 1 {
		return false
	}
	t, ok := e.Children[0].(*Text)
	if !ok || !t.Marks.IsZero() {
		return false
	}
	return t.Text == "" || t.Text == "\n"
}
