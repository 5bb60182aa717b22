package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status values of categories, pages and posts.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// ImageType names the kind of entity an image belongs to.
type ImageType string

const (
	ImageTypeCategory ImageType = "Category"
	ImageTypePage     ImageType = "Page"
	ImageTypePost     ImageType = "Post"
	ImageTypeDocument ImageType = "Document"
)

// Model holds the columns every entity shares.
type Model struct {
	ID        string `gorm:"primaryKey;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUIDv4 to records created without an id.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	Model
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool
}

type Category struct {
	Model
	Name           string
	Slug           string `gorm:"uniqueIndex;not null"`
	Description    string
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	Order          int
	ParentID       *string `gorm:"index"`
	ImageID        *string
	ImageAlt       string
}

type Tag struct {
	Model
	Name       string
	Slug       string  `gorm:"uniqueIndex;not null"`
	CategoryID *string `gorm:"index"`
}

// Image is the metadata of a stored image binary. The binary itself lives at
// <images dir>/<StorageID>.<Extension>.
type Image struct {
	Model
	Name      string
	Type      ImageType
	Filename  string `gorm:"uniqueIndex;not null"`
	StorageID string
	Extension string
	Filesize  int64
	Width     int
	Height    int
}

type Page struct {
	Model
	Title          string
	Slug           string `gorm:"uniqueIndex;not null"`
	Content        datatypes.JSON
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	ViewsCount     int
	ImageID        *string
	ImageAlt       string
	AuthorID       *string `gorm:"index"`
}

type Post struct {
	Model
	Title          string
	Slug           string `gorm:"uniqueIndex;not null"`
	Brief          string
	Content        datatypes.JSON
	PublishDate    *time.Time
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	ViewsCount     int
	ImageID        *string
	ImageAlt       string
	AuthorID       *string `gorm:"index"`
	CategoryID     *string `gorm:"index"`
	Tags           []Tag   `gorm:"many2many:post_tags;"`
}

// Counts is the number of stored records per entity kind.
type Counts struct {
	Users      int64
	Categories int64
	Tags       int64
	Images     int64
	Pages      int64
	Posts      int64
}
