// Package media reads size and dimensions of image files on disk.
package media

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Placeholder values used when an image cannot be read.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultSize   = 0
)

// Info describes an image file.
type Info struct {
	Size   int64
	Width  int
	Height int
	Format string
}

// Probe stats the file and decodes only the image header.
func Probe(path string) (Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return Info{Size: stat.Size()}, fmt.Errorf("decode image config: %w", err)
	}

	return Info{
		Size:   stat.Size(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}
