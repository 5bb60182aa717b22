package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/takak2166/cmsimport/internal/logger"
)

// DB is the gorm implementation of Store.
type DB struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&User{},
		&Category{},
		&Tag{},
		&Image{},
		&Page{},
		&Post{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("Database ready", logger.Fields{"path": path})

	return &DB{db: db}, nil
}

// Close releases the underlying connection.
func (s *DB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// first loads the first record matching query into dest. A missing record
// is reported as found == false with a nil error.
func (s *DB) first(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := s.db.WithContext(ctx).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DB) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	found, err := s.first(ctx, &user, "email = ?", email)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (s *DB) CreateUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *DB) FindCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	found, err := s.first(ctx, &category, "slug = ?", slug)
	if err != nil || !found {
		return nil, err
	}
	return &category, nil
}

func (s *DB) CreateCategory(ctx context.Context, category *Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *DB) FindTagBySlug(ctx context.Context, slug string) (*Tag, error) {
	var tag Tag
	found, err := s.first(ctx, &tag, "slug = ?", slug)
	if err != nil || !found {
		return nil, err
	}
	return &tag, nil
}

func (s *DB) CreateTag(ctx context.Context, tag *Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *DB) FindImageByFilename(ctx context.Context, filename string) (*Image, error) {
	var image Image
	found, err := s.first(ctx, &image, "filename = ?", filename)
	if err != nil || !found {
		return nil, err
	}
	return &image, nil
}

func (s *DB) CreateImage(ctx context.Context, image *Image) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *DB) FindPageBySlug(ctx context.Context, slug string) (*Page, error) {
	var page Page
	found, err := s.first(ctx, &page, "slug = ?", slug)
	if err != nil || !found {
		return nil, err
	}
	return &page, nil
}

func (s *DB) CreatePage(ctx context.Context, page *Page) error {
	return s.db.WithContext(ctx).Create(page).Error
}

func (s *DB) FindPostBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	found, err := s.first(ctx, &post, "slug = ?", slug)
	if err != nil || !found {
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts the post and its post_tags rows. Tags must already
// exist; only their ids are read.
func (s *DB) CreatePost(ctx context.Context, post *Post) error {
	return s.db.WithContext(ctx).Omit("Tags.*").Create(post).Error
}

// GetPost loads a post with its tags.
func (s *DB) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	err := s.db.WithContext(ctx).Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *DB) UpdatePostContent(ctx context.Context, id string, content datatypes.JSON) error {
	result := s.db.WithContext(ctx).Model(&Post{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("post %s not found", id)
	}
	return nil
}

func (s *DB) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	tx := s.db.WithContext(ctx)
	for _, q := range []struct {
		model interface{}
		dest  *int64
	}{
		{&User{}, &c.Users},
		{&Category{}, &c.Categories},
		{&Tag{}, &c.Tags},
		{&Image{}, &c.Images},
		{&Page{}, &c.Pages},
		{&Post{}, &c.Posts},
	} {
		if err := tx.Model(q.model).Count(q.dest).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}
