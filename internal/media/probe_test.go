package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "cover.png")
		writePNG(t, path, 32, 16)

		info, err := Probe(path)
		require.NoError(t, err)
		assert.Equal(t, 32, info.Width)
		assert.Equal(t, 16, info.Height)
		assert.Equal(t, "png", info.Format)
		assert.Positive(t, info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Probe(filepath.Join(dir, "nope.jpg"))
		assert.Error(t, err)
	})

	t.Run("not an image keeps the size", func(t *testing.T) {
		path := filepath.Join(dir, "notes.jpg")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

		info, err := Probe(path)
		assert.Error(t, err)
		assert.Equal(t, int64(10), info.Size)
	})
}
