// Package plaintext removes markup from short text fields.
package plaintext

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes every tag and keeps the text between them with entities
// decoded. Whitespace is left exactly as the markup had it.
func Strip(s string) string {
	if s == "" {
		return ""
	}

	var buf strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return buf.String()
		case html.TextToken:
			if skip == 0 {
				buf.Write(z.Text())
			}
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case html.EndTagToken:
			if skip > 0 && isRawText(z) {
				skip--
			}
		}
	}
}

// script and style bodies are not text
func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
