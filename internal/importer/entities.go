// Package importer replays legacy CMS exports into the content store.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/filename"
	"github.com/takak2166/cmsimport/internal/logger"
	"github.com/takak2166/cmsimport/internal/media"
	"github.com/takak2166/cmsimport/internal/store"
	"github.com/takak2166/cmsimport/internal/validation"
)

// ErrNoFilename is returned by CreateImage for names without a file part.
var ErrNoFilename = errors.New("image has no usable filename")

// Mirror receives every post created by an import run.
type Mirror interface {
	PublishPost(ctx context.Context, title string, doc document.Document, tags []string) error
}

// Options configure an Importer.
type Options struct {
	// ImagesDir holds the legacy image binaries, looked up by filename.
	ImagesDir string
	// UploadDir, when set, receives a copy of every image under a generated
	// storage name. Otherwise images keep their legacy name in ImagesDir.
	UploadDir       string
	DefaultPassword string
	Mirror          Mirror
}

// Importer creates entities with find-or-create semantics.
type Importer struct {
	store        store.Store
	validator    *validation.Validator
	imagesDir    string
	uploadDir    string
	passwordHash string
	mirror       Mirror
}

// New hashes the default password once for every user of the run.
func New(s store.Store, opts Options) (*Importer, error) {
	if opts.DefaultPassword == "" {
		return nil, fmt.Errorf("default password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	return &Importer{
		store:        s,
		validator:    validation.New(),
		imagesDir:    opts.ImagesDir,
		uploadDir:    opts.UploadDir,
		passwordHash: string(hash),
		mirror:       opts.Mirror,
	}, nil
}

// UserInput is a user to import, keyed by email.
type UserInput struct {
	Name    string
	Email   string
	IsAdmin bool
}

// CategoryInput is a category to import, keyed by slug.
type CategoryInput struct {
	Name           string
	Slug           string
	Description    string
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	Parent         *document.Ref
}

// TagInput is a tag to import, keyed by slug.
type TagInput struct {
	Name     string
	Slug     string
	Category *document.Ref
}

// ImageInput is an image to import, keyed by its normalized filename.
type ImageInput struct {
	Type store.ImageType
	// Filename is the legacy name, relative to the images directory.
	Filename string
	// LegacySize is the size recorded by the old system, used when the
	// file cannot be read.
	LegacySize int64
}

// PageInput is a page to import, keyed by slug.
type PageInput struct {
	Title          string
	Slug           string
	Content        document.Document
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	ViewsCount     int
	Image          *document.Ref
	ImageAlt       string
	Author         *document.Ref
}

// PostInput is a post to import, keyed by slug.
type PostInput struct {
	Title          string
	Slug           string
	Brief          string
	Content        document.Document
	PublishDate    *time.Time
	Status         string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	ViewsCount     int
	Image          *document.Ref
	ImageAlt       string
	Author         *document.Ref
	Category       *document.Ref
	Tags           []document.Ref
}

// CreateUser returns the user with in.Email, creating it when missing.
func (im *Importer) CreateUser(ctx context.Context, in UserInput) (*store.User, bool, error) {
	existing, err := im.store.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find user %s: %w", in.Email, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &store.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: im.passwordHash,
		IsAdmin:      in.IsAdmin,
	}
	if err := im.store.CreateUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", in.Email, err)
	}
	logger.Debug("Created user", logger.Fields{"email": in.Email})
	return user, true, nil
}

// CreateCategory returns the category with in.Slug, creating it when missing.
func (im *Importer) CreateCategory(ctx context.Context, in CategoryInput) (*store.Category, bool, error) {
	existing, err := im.store.FindCategoryBySlug(ctx, in.Slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find category %s: %w", in.Slug, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	category := &store.Category{
		Name:           in.Name,
		Slug:           in.Slug,
		Description:    in.Description,
		Status:         in.Status,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		SeoKeywords:    in.SeoKeywords,
		ParentID:       refID(in.Parent),
	}
	if err := im.store.CreateCategory(ctx, category); err != nil {
		return nil, false, fmt.Errorf("failed to create category %s: %w", in.Slug, err)
	}
	logger.Debug("Created category", logger.Fields{"slug": in.Slug})
	return category, true, nil
}

// CreateTag returns the tag with in.Slug, creating it when missing.
func (im *Importer) CreateTag(ctx context.Context, in TagInput) (*store.Tag, bool, error) {
	existing, err := im.store.FindTagBySlug(ctx, in.Slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find tag %s: %w", in.Slug, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	tag := &store.Tag{
		Name:       in.Name,
		Slug:       in.Slug,
		CategoryID: refID(in.Category),
	}
	if err := im.store.CreateTag(ctx, tag); err != nil {
		return nil, false, fmt.Errorf("failed to create tag %s: %w", in.Slug, err)
	}
	logger.Debug("Created tag", logger.Fields{"slug": in.Slug})
	return tag, true, nil
}

// CreateImage returns the image whose normalized filename matches
// in.Filename, creating it when missing. Size and dimensions are read from
// the file; when that fails the legacy size and placeholder dimensions are
// stored instead.
func (im *Importer) CreateImage(ctx context.Context, in ImageInput) (*store.Image, bool, error) {
	key := filename.Normalize(in.Filename)
	if key == "" {
		return nil, false, fmt.Errorf("%w: %q", ErrNoFilename, in.Filename)
	}

	existing, err := im.store.FindImageByFilename(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find image %s: %w", key, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	source := filepath.Join(im.imagesDir, filepath.FromSlash(strings.ReplaceAll(in.Filename, "\\", "/")))
	base := path.Base(strings.ReplaceAll(in.Filename, "\\", "/"))
	stem, ext := filename.Split(base)

	image := &store.Image{
		Name:      stem,
		Type:      in.Type,
		Filename:  key,
		StorageID: stem,
		Extension: ext,
		Filesize:  media.DefaultSize,
		Width:     media.DefaultWidth,
		Height:    media.DefaultHeight,
	}
	if in.LegacySize > 0 {
		image.Filesize = in.LegacySize
	}

	info, err := media.Probe(source)
	if err == nil {
		image.Filesize = info.Size
		image.Width = info.Width
		image.Height = info.Height
	} else {
		if info.Size > 0 {
			image.Filesize = info.Size
		}
		logger.Warn("Using placeholder image metadata", logger.Fields{
			"filename": in.Filename,
			"filesize": image.Filesize,
			"width":    image.Width,
			"height":   image.Height,
			"error":    err.Error(),
		})
	}

	if im.uploadDir != "" && err == nil {
		stored := filename.StorageFilename(base)
		if err := copyFile(source, filepath.Join(im.uploadDir, stored)); err != nil {
			return nil, false, fmt.Errorf("failed to store image %s: %w", in.Filename, err)
		}
		image.StorageID, image.Extension = filename.Split(stored)
	}

	if err := im.store.CreateImage(ctx, image); err != nil {
		return nil, false, fmt.Errorf("failed to create image %s: %w", key, err)
	}
	logger.Debug("Created image", logger.Fields{"filename": key, "storage_id": image.StorageID})
	return image, true, nil
}

// CreatePage returns the page with in.Slug, creating it when missing.
func (im *Importer) CreatePage(ctx context.Context, in PageInput) (*store.Page, bool, error) {
	existing, err := im.store.FindPageBySlug(ctx, in.Slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find page %s: %w", in.Slug, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	content, err := marshalContent(in.Content)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode page %s: %w", in.Slug, err)
	}

	page := &store.Page{
		Title:          in.Title,
		Slug:           in.Slug,
		Content:        content,
		Status:         in.Status,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		SeoKeywords:    in.SeoKeywords,
		ViewsCount:     in.ViewsCount,
		ImageID:        refID(in.Image),
		ImageAlt:       in.ImageAlt,
		AuthorID:       refID(in.Author),
	}
	if err := im.store.CreatePage(ctx, page); err != nil {
		return nil, false, fmt.Errorf("failed to create page %s: %w", in.Slug, err)
	}
	logger.Debug("Created page", logger.Fields{"slug": in.Slug})
	return page, true, nil
}

// CreatePost returns the post with in.Slug, creating it when missing. A new
// post has its stored content cleaned of empty paragraphs and headings.
func (im *Importer) CreatePost(ctx context.Context, in PostInput) (*store.Post, bool, error) {
	existing, err := im.store.FindPostBySlug(ctx, in.Slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find post %s: %w", in.Slug, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	content, err := marshalContent(in.Content)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode post %s: %w", in.Slug, err)
	}

	tags := make([]store.Tag, 0, len(in.Tags))
	for _, ref := range in.Tags {
		if ref.ID == "" {
			continue
		}
		tags = append(tags, store.Tag{Model: store.Model{ID: ref.ID}})
	}

	post := &store.Post{
		Title:          in.Title,
		Slug:           in.Slug,
		Brief:          in.Brief,
		Content:        content,
		PublishDate:    in.PublishDate,
		Status:         in.Status,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		SeoKeywords:    in.SeoKeywords,
		ViewsCount:     in.ViewsCount,
		ImageID:        refID(in.Image),
		ImageAlt:       in.ImageAlt,
		AuthorID:       refID(in.Author),
		CategoryID:     refID(in.Category),
		Tags:           tags,
	}
	if err := im.store.CreatePost(ctx, post); err != nil {
		return nil, false, fmt.Errorf("failed to create post %s: %w", in.Slug, err)
	}
	logger.Debug("Created post", logger.Fields{"slug": in.Slug, "tags": len(tags)})

	if err := im.cleanPostContent(ctx, post.ID); err != nil {
		return nil, false, err
	}
	return post, true, nil
}

// cleanPostContent re-reads the stored content of a post and writes it back
// without empty paragraphs and headings.
func (im *Importer) cleanPostContent(ctx context.Context, id string) error {
	post, err := im.store.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load post %s: %w", id, err)
	}
	if post == nil {
		return fmt.Errorf("post %s disappeared after create", id)
	}

	doc, err := document.Parse(post.Content)
	if err != nil {
		return fmt.Errorf("failed to decode content of post %s: %w", post.Slug, err)
	}

	cleaned := document.ClearEmptyElements(doc)
	if len(cleaned) == len(doc) {
		return nil
	}
	if len(cleaned) == 0 {
		cleaned = document.Empty()
	}

	content, err := marshalContent(cleaned)
	if err != nil {
		return fmt.Errorf("failed to encode post %s: %w", post.Slug, err)
	}
	if err := im.store.UpdatePostContent(ctx, id, content); err != nil {
		return fmt.Errorf("failed to update post %s: %w", post.Slug, err)
	}
	logger.Debug("Removed empty elements", logger.Fields{"slug": post.Slug, "removed": len(doc) - len(cleaned)})
	return nil
}

// publish hands a new post to the mirror. Mirror failures are logged only.
func (im *Importer) publish(ctx context.Context, title string, doc document.Document, tags []string) {
	if im.mirror == nil {
		return
	}
	if err := im.mirror.PublishPost(ctx, title, doc, tags); err != nil {
		logger.Error("Failed to mirror post", err, logger.Fields{"title": title})
	}
}

func marshalContent(doc document.Document) (datatypes.JSON, error) {
	if len(doc) == 0 {
		doc = document.Empty()
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func refID(ref *document.Ref) *string {
	if ref == nil || ref.ID == "" {
		return nil
	}
	id := ref.ID
	return &id
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
