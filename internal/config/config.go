// Package config reads import settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultImportDir    = "./import_data"
	DefaultDatabasePath = "./keystone.db"
	DefaultImagesDir    = "public/images"
	DefaultPassword     = "qwerty12345"
	DefaultLogLevel     = "info"
)

type (
	Config struct {
		Import
		Database
		Notion
		LogLevel string
	}

	Import struct {
		Dir             string
		ImagesDir       string
		UploadDir       string // Copy images here under generated names (optional)
		DefaultPassword string // Password given to every imported user
	}
	Database struct {
		Path string
	}
	Notion struct {
		APIKey       string
		ParentPageID string
	}
)

// LoadEnv loads envFile into the process environment. A missing file is not
// an error; variables already set win over the file.
func LoadEnv(envFile string) error {
	err := godotenv.Load(envFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", envFile, err)
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("import_dir", DefaultImportDir)
	v.SetDefault("images_dir", DefaultImagesDir)
	v.SetDefault("upload_dir", "")
	v.SetDefault("default_password", DefaultPassword)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("notion_api_key", "")
	v.SetDefault("notion_parent_page_id", "")

	return &Config{
		Import: Import{
			Dir:             v.GetString("IMPORT_DIR"),
			ImagesDir:       v.GetString("IMAGES_DIR"),
			UploadDir:       v.GetString("UPLOAD_DIR"),
			DefaultPassword: v.GetString("DEFAULT_PASSWORD"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Notion: Notion{
			APIKey:       v.GetString("NOTION_API_KEY"),
			ParentPageID: v.GetString("NOTION_PARENT_PAGE_ID"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}
