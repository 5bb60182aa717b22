package document

import "fmt"

// blockTags maps an HTML tag to the Element it becomes.
var blockTags = map[string]BlockKind{
	"p":          BlockParagraph,
	"li":         BlockListItem,
	"ul":         BlockUnorderedList,
	"ol":         BlockOrderedList,
	"blockquote": BlockBlockquote,
	"pre":        BlockCode,
	"h1":         BlockHeading,
	"h2":         BlockHeading,
	"h3":         BlockHeading,
	"h4":         BlockHeading,
	"h5":         BlockHeading,
	"h6":         BlockHeading,
	"figure":     BlockFigure,
	"figcaption": BlockFigcaption,
	"hr":         BlockDivider,
	"table":      BlockTable,
	"th":         BlockTableHead,
	"tr":         BlockTableRow,
	"td":         BlockTableCell,
	"center":     BlockCenter,
}

// markTags maps an HTML tag to the mark it adds to descendant text.
var markTags = map[string]MarkKind{
	"strong": MarkBold,
	"b":      MarkBold,
	"em":     MarkItalic,
	"i":      MarkItalic,
	"u":      MarkUnderline,
	"ins":    MarkUnderline,
	"s":      MarkStrikethrough,
	"strike": MarkStrikethrough,
	"del":    MarkStrikethrough,
	"code":   MarkCode,
	"kbd":    MarkCode,
	"tt":     MarkCode,
}

// Anchors are handled separately and are the only source of links.
const anchorTag = "a"

var headingLevels = map[string]int{"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6}

func init() {
	if err := validateTables(); err != nil {
		panic(err)
	}
}

// validateTables checks that every BlockKind and MarkKind can be produced.
func validateTables() error {
	produced := map[BlockKind]bool{BlockLink: true}
	for _, kind := range blockTags {
		produced[kind] = true
	}
	for _, kind := range AllBlockKinds {
		if !produced[kind] {
			return fmt.Errorf("document: no tag produces block kind %q", kind)
		}
	}

	marks := map[MarkKind]bool{}
	for _, kind := range markTags {
		marks[kind] = true
	}
	for _, kind := range AllMarkKinds {
		if !marks[kind] {
			return fmt.Errorf("document: no tag produces mark %q", kind)
		}
	}

	for tag, level := range headingLevels {
		if blockTags[tag] != BlockHeading || level < 1 || level > 6 {
			return fmt.Errorf("document: heading tag %q is inconsistent", tag)
		}
	}
	for tag := range blockTags {
		if _, ok := markTags[tag]; ok || tag == anchorTag {
			return fmt.Errorf("document: tag %q is mapped twice", tag)
		}
	}
	return nil
}
