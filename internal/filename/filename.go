// Package filename splits, normalizes and generates image file names.
package filename

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Split returns the part before the last dot and the part after it.
// "a.b.JPG" -> ("a.b", "JPG"). A name without a dot has no extension.
func Split(full string) (stem, ext string) {
	if full == "" {
		return "", ""
	}
	i := strings.LastIndex(full, ".")
	if i < 0 {
		return full, ""
	}
	return full[:i], full[i+1:]
}

// Normalize turns a stored filename or an <img src> value into the key of an
// image index: the last path segment without query or fragment, lower-cased.
// "/uploads/Photo.JPG?w=300" -> "photo.jpg".
func Normalize(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		src = u.Path
	} else if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	if unescaped, err := url.PathUnescape(src); err == nil {
		src = unescaped
	}
	src = strings.ReplaceAll(src, "\\", "/")
	base := path.Base(src)
	if base == "." || base == "/" {
		return ""
	}
	return strings.ToLower(base)
}

// Slugify converts a string to a URL-safe slug.
// "My Photo" -> "my-photo", "Café Crème" -> "cafe-creme".
func Slugify(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateStorageName derives a collision-resistant name from an original
// filename: slug of the stem, a hyphen and a NanoID. The extension is dropped.
func GenerateStorageName(original string) string {
	stem, _ := Split(path.Base(strings.ReplaceAll(original, "\\", "/")))
	slug := Slugify(stem)
	if slug == "" {
		slug = "file"
	}
	return slug + "-" + gonanoid.Must()
}

// StorageFilename is GenerateStorageName with the lower-cased extension
// appended, so Split on the result recovers the extension.
func StorageFilename(original string) string {
	name := GenerateStorageName(original)
	_, ext := Split(path.Base(original))
	if ext == "" {
		return name
	}
	return name + "." + strings.ToLower(ext)
}
