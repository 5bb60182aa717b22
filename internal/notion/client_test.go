package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jomei/notionapi"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/notion/mock_notion"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		apiKey       string
		parentPageID string
		expectError  bool
	}{
		{
			name:         "Valid configuration",
			apiKey:       "test_key",
			parentPageID: "test_page_id",
		},
		{
			name:         "Missing API key",
			parentPageID: "test_page_id",
			expectError:  true,
		},
		{
			name:        "Missing parent page ID",
			apiKey:      "test_key",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.apiKey, tt.parentPageID)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if client == nil {
					t.Error("Expected client, got nil")
				}
			}
		})
	}
}

func existingPage(title string) *notionapi.Page {
	return &notionapi.Page{
		Object: "page",
		ID:     "existing_page_id",
		Properties: notionapi.Properties{
			"title": &notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{
						Text: &notionapi.Text{
							Content: title,
						},
					},
				},
			},
		},
	}
}

func TestPublishPost(t *testing.T) {
	ctx := context.Background()

	doc := document.Document{
		&document.Element{Type: document.BlockHeading, Level: 2, Children: []document.Node{&document.Text{Text: "Intro"}}},
		&document.Element{Type: document.BlockParagraph, Children: []document.Node{&document.Text{Text: "Body"}}},
	}

	tests := map[string]struct {
		title      string
		tags       []string
		setupMocks func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService)
		wantErr    bool
	}{
		"Success - With Tags": {
			title: "Test Page",
			tags:  []string{"Go"},
			setupMocks: func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService) {
				mockClient.EXPECT().Search().Return(mockSearch).AnyTimes()
				mockClient.EXPECT().Page().Return(mockPage).AnyTimes()

				mockSearch.EXPECT().Do(ctx, gomock.Any()).Return(&notionapi.SearchResponse{
					Results: []notionapi.Object{existingPage("Another Page")},
				}, nil)

				mockPage.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
					if req.Parent.PageID != "test_page_id" {
						t.Errorf("Expected parent test_page_id, got %s", req.Parent.PageID)
					}
					// tags paragraph, heading, paragraph
					if len(req.Children) != 3 {
						t.Errorf("Expected 3 blocks, got %d", len(req.Children))
					}
					return &notionapi.Page{ID: "new_page_id"}, nil
				})
			},
		},
		"Existing page is skipped": {
			title: "Test Page",
			setupMocks: func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService) {
				mockClient.EXPECT().Search().Return(mockSearch).AnyTimes()

				mockSearch.EXPECT().Do(ctx, gomock.Any()).Return(&notionapi.SearchResponse{
					Results: []notionapi.Object{existingPage("Test Page")},
				}, nil)
			},
		},
		"Retry after failure": {
			title: "Test Page",
			setupMocks: func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService) {
				mockClient.EXPECT().Search().Return(mockSearch).AnyTimes()
				mockClient.EXPECT().Page().Return(mockPage).AnyTimes()

				mockSearch.EXPECT().Do(ctx, gomock.Any()).Return(&notionapi.SearchResponse{}, nil)
				gomock.InOrder(
					mockPage.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("rate limited")),
					mockPage.EXPECT().Create(ctx, gomock.Any()).Return(&notionapi.Page{ID: "new_page_id"}, nil),
				)
			},
		},
		"Failure - All attempts fail": {
			title: "Test Page",
			setupMocks: func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService) {
				mockClient.EXPECT().Search().Return(mockSearch).AnyTimes()
				mockClient.EXPECT().Page().Return(mockPage).AnyTimes()

				mockSearch.EXPECT().Do(ctx, gomock.Any()).Return(&notionapi.SearchResponse{}, nil)
				mockPage.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("unavailable")).Times(3)
			},
			wantErr: true,
		},
		"Failure - Search error": {
			title: "Test Page",
			setupMocks: func(mockClient *mock_notion.MockNotionClient, mockPage *mock_notion.MockPageService, mockSearch *mock_notion.MockSearchService) {
				mockClient.EXPECT().Search().Return(mockSearch).AnyTimes()

				mockSearch.EXPECT().Do(ctx, gomock.Any()).Return(nil, errors.New("unauthorized"))
			},
			wantErr: true,
		},
		"Failure - Empty Title": {
			title:      "",
			setupMocks: func(*mock_notion.MockNotionClient, *mock_notion.MockPageService, *mock_notion.MockSearchService) {},
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_notion.NewMockNotionClient(ctrl)
			mockPage := mock_notion.NewMockPageService(ctrl)
			mockSearch := mock_notion.NewMockSearchService(ctrl)
			tt.setupMocks(mockClient, mockPage, mockSearch)

			client := &Client{
				client:   mockClient,
				parentID: "test_page_id",
			}

			err := client.PublishPost(ctx, tt.title, doc, tt.tags)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}
