// Package store persists imported content. Find methods return (nil, nil)
// when no record matches.
package store

import (
	"context"

	"gorm.io/datatypes"
)

//go:generate mockgen -source=store.go -destination=mock_store/mock_store.go -package=mock_store
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error

	FindCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error

	FindTagBySlug(ctx context.Context, slug string) (*Tag, error)
	CreateTag(ctx context.Context, tag *Tag) error

	FindImageByFilename(ctx context.Context, filename string) (*Image, error)
	CreateImage(ctx context.Context, image *Image) error

	FindPageBySlug(ctx context.Context, slug string) (*Page, error)
	CreatePage(ctx context.Context, page *Page) error

	FindPostBySlug(ctx context.Context, slug string) (*Post, error)
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id string) (*Post, error)
	UpdatePostContent(ctx context.Context, id string, content datatypes.JSON) error

	Counts(ctx context.Context) (Counts, error)
}
