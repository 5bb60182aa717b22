package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/takak2166/cmsimport/internal/config"
	"github.com/takak2166/cmsimport/internal/importer"
	"github.com/takak2166/cmsimport/internal/logger"
	"github.com/takak2166/cmsimport/internal/notion"
	"github.com/takak2166/cmsimport/internal/store"
)

func main() {
	// Load .env file before reading defaults
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
		os.Exit(1)
	}
	cfg := config.NewConfig()

	// Parse command line flags
	source := flag.String("source", "", "Legacy export to import: mongo or mysql")
	importDir := flag.String("import-dir", cfg.Import.Dir, "Directory holding the mongo/ and mysql/ exports")
	dbPath := flag.String("db", cfg.Database.Path, "Path to the SQLite content database")
	imagesDir := flag.String("images-dir", cfg.ImagesDir, "Directory holding the legacy image files")
	mirror := flag.Bool("notion", false, "Also publish new posts to Notion")
	flag.Parse()

	if *source != importer.MongoSubdir && *source != importer.MySQLSubdir {
		fmt.Println("Error: source must be mongo or mysql")
		flag.Usage()
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("Failed to open database", err, logger.Fields{"path": *dbPath})
		os.Exit(1)
	}
	defer db.Close()

	opts := importer.Options{
		ImagesDir:       *imagesDir,
		UploadDir:       cfg.UploadDir,
		DefaultPassword: cfg.DefaultPassword,
	}
	if *mirror {
		notionClient, err := notion.New(cfg.APIKey, cfg.ParentPageID)
		if err != nil {
			logger.Error("Failed to initialize Notion client", err)
			os.Exit(1)
		}
		opts.Mirror = notionClient
	}

	im, err := importer.New(db, opts)
	if err != nil {
		logger.Error("Failed to initialize importer", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *source == importer.MongoSubdir {
		_, err = im.ImportMongo(ctx, *importDir)
	} else {
		_, err = im.ImportMySQL(ctx, *importDir)
	}
	if err != nil {
		logger.Error("Import failed", err, logger.Fields{"source": *source})
		db.Close()
		os.Exit(1)
	}

	logger.Info("Import finished, start the CMS to review the content")
}
