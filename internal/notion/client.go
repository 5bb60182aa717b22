// Package notion mirrors imported posts into a Notion workspace.
package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/logger"
)

const (
	createAttempts = 3
	// maxChildren is the number of blocks Notion accepts in one request.
	maxChildren = 100
	// maxTextLength is the longest content of a single rich text object.
	maxTextLength = 2000
)

// Client publishes documents as pages under a parent page.
type Client struct {
	client     NotionClient
	parentID   notionapi.PageID
	retryDelay time.Duration
}

// New creates a new Notion client
func New(apiKey, parentPageID string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("NOTION_API_KEY is not set")
	}
	if parentPageID == "" {
		return nil, fmt.Errorf("NOTION_PARENT_PAGE_ID is not set")
	}

	return &Client{
		client:     apiClient{notionapi.NewClient(notionapi.Token(apiKey))},
		parentID:   notionapi.PageID(parentPageID),
		retryDelay: time.Second,
	}, nil
}

// PublishPost creates a page titled title holding doc. A page with the same
// title already in the workspace is left alone.
func (c *Client) PublishPost(ctx context.Context, title string, doc document.Document, tags []string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("page title is empty")
	}

	logger.Debug("Publishing post to Notion", logger.Fields{
		"title": title,
		"tags":  tags,
	})

	exists, err := c.pageExists(ctx, title)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("Notion page already exists", logger.Fields{"title": title})
		return nil
	}

	children := ConvertDocument(doc)
	if len(tags) > 0 {
		children = append([]notionapi.Block{paragraphBlock(plainRichText("Tags: " + strings.Join(tags, ", ")))}, children...)
	}
	if len(children) > maxChildren {
		logger.Warn("Truncating Notion page", logger.Fields{"title": title, "blocks": len(children)})
		children = children[:maxChildren]
	}

	pageParams := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: c.parentID,
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Title: plainRichText(title),
			},
		},
		Children: children,
	}

	// Retry page creation up to 3 times
	for i := 0; i < createAttempts; i++ {
		_, err = c.client.Page().Create(ctx, pageParams)
		if err == nil {
			break
		}
		if i < createAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to create page after %d attempts: %w", createAttempts, err)
	}

	logger.Info("Successfully created Notion page", logger.Fields{
		"title":  title,
		"blocks": len(children),
	})
	return nil
}

// pageExists searches the workspace for a page titled title.
func (c *Client) pageExists(ctx context.Context, title string) (bool, error) {
	query := &notionapi.SearchRequest{
		Query: title,
		Filter: notionapi.SearchFilter{
			Property: "object",
			Value:    "page",
		},
	}

	results, err := c.client.Search().Do(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to search for page: %w", err)
	}

	for _, result := range results.Results {
		page, ok := result.(*notionapi.Page)
		if !ok {
			continue
		}
		for _, prop := range page.Properties {
			var rt []notionapi.RichText
			switch p := prop.(type) {
			case *notionapi.TitleProperty:
				rt = p.Title
			case notionapi.TitleProperty:
				rt = p.Title
			default:
				continue
			}
			if richTextContent(rt) == title {
				return true, nil
			}
		}
	}
	return false, nil
}

func richTextContent(rt []notionapi.RichText) string {
	var sb strings.Builder
	for _, r := range rt {
		if r.Text != nil {
			sb.WriteString(r.Text.Content)
		} else {
			sb.WriteString(r.PlainText)
		}
	}
	return sb.String()
}
