package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/takak2166/cmsimport/internal/logger"
)

// Counter tallies the outcome of one entity kind.
type Counter struct {
	Created  int
	Existing int
	Skipped  int
}

func (c *Counter) add(created bool) {
	if created {
		c.Created++
	} else {
		c.Existing++
	}
}

// Summary is the outcome of an import run.
type Summary struct {
	Users      Counter
	Categories Counter
	Tags       Counter
	Images     Counter
	Pages      Counter
	Posts      Counter
}

// Created is the number of records the run created.
func (s Summary) Created() int {
	return s.Users.Created + s.Categories.Created + s.Tags.Created +
		s.Images.Created + s.Pages.Created + s.Posts.Created
}

func (s Summary) log(source string) {
	fields := logger.Fields{"source": source}
	for name, c := range map[string]Counter{
		"users":      s.Users,
		"categories": s.Categories,
		"tags":       s.Tags,
		"images":     s.Images,
		"pages":      s.Pages,
		"posts":      s.Posts,
	} {
		fields[name] = fmt.Sprintf("created=%d existing=%d skipped=%d", c.Created, c.Existing, c.Skipped)
	}
	logger.Info("Import completed", fields)
}

// readRecords decodes a JSON array file and drops the records that fail
// validation. Dropped records are counted in skipped.
func readRecords[T any](im *Importer, dir, name string, skipped *int) ([]T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		var rec T
		if err := json.Unmarshal(r, &rec); err != nil {
			logger.Warn("Skipping malformed record", logger.Fields{"file": name, "index": i, "error": err.Error()})
			*skipped++
			continue
		}
		if err := im.validator.Validate(rec); err != nil {
			logger.Warn("Skipping invalid record", logger.Fields{"file": name, "index": i, "error": err.Error()})
			*skipped++
			continue
		}
		records = append(records, rec)
	}

	logger.Debug("Read records", logger.Fields{"file": name, "count": len(records)})
	return records, nil
}
