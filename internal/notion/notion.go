package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

//go:generate mockgen -source=notion.go -destination=mock_notion/mock_notion.go -package=mock_notion
type (
	// NotionClient is the part of *notionapi.Client the mirror talks to.
	NotionClient interface {
		Page() notionapi.PageService
		Search() notionapi.SearchService
	}

	PageService interface {
		Create(context.Context, *notionapi.PageCreateRequest) (*notionapi.Page, error)
		Update(context.Context, notionapi.PageID, *notionapi.PageUpdateRequest) (*notionapi.Page, error)
		Get(context.Context, notionapi.PageID) (*notionapi.Page, error)
	}

	SearchService interface {
		Do(context.Context, *notionapi.SearchRequest) (*notionapi.SearchResponse, error)
	}
)

// apiClient adapts *notionapi.Client to NotionClient.
type apiClient struct {
	*notionapi.Client
}

func (c apiClient) Page() notionapi.PageService {
	return c.Client.Page
}

func (c apiClient) Search() notionapi.SearchService {
	return c.Client.Search
}
