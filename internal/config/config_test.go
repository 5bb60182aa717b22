package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"IMPORT_DIR", "IMAGES_DIR", "UPLOAD_DIR", "DEFAULT_PASSWORD", "DATABASE_PATH", "LOG_LEVEL", "NOTION_API_KEY", "NOTION_PARENT_PAGE_ID"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := NewConfig()

	assert.Equal(t, DefaultImportDir, cfg.Import.Dir)
	assert.Equal(t, DefaultImagesDir, cfg.ImagesDir)
	assert.Empty(t, cfg.UploadDir)
	assert.Equal(t, DefaultPassword, cfg.DefaultPassword)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("IMPORT_DIR", "/data/export")
	t.Setenv("DATABASE_PATH", "/data/cms.db")
	t.Setenv("NOTION_API_KEY", "secret_key")
	t.Setenv("NOTION_PARENT_PAGE_ID", "page")

	cfg := NewConfig()

	assert.Equal(t, "/data/export", cfg.Import.Dir)
	assert.Equal(t, "/data/cms.db", cfg.Database.Path)
	assert.Equal(t, "secret_key", cfg.APIKey)
	assert.Equal(t, "page", cfg.ParentPageID)
}

func TestLoadEnv(t *testing.T) {
	t.Run("Missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("File values are exported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("IMAGES_DIR=/srv/images\n"), 0644))

		t.Setenv("IMAGES_DIR", "")
		os.Unsetenv("IMAGES_DIR")

		require.NoError(t, LoadEnv(path))
		assert.Equal(t, "/srv/images", NewConfig().ImagesDir)
	})
}
