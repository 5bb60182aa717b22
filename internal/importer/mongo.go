package importer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/logger"
	"github.com/takak2166/cmsimport/internal/models"
	"github.com/takak2166/cmsimport/internal/plaintext"
	"github.com/takak2166/cmsimport/internal/store"
)

// MongoSubdir is the directory under the import root holding the Mongo export.
const MongoSubdir = "mongo"

// ImportMongo imports <importDir>/mongo in dependency order.
func (im *Importer) ImportMongo(ctx context.Context, importDir string) (Summary, error) {
	dir := filepath.Join(importDir, MongoSubdir)
	logger.Info("Importing Mongo JSON data", logger.Fields{"dir": dir})

	var summary Summary

	logger.Info("Adding users")
	users, err := readRecords[models.MongoUser](im, dir, "user.json", &summary.Users.Skipped)
	if err != nil {
		return summary, err
	}
	userEmails := make(map[string]string, len(users))
	addedUsers := make(map[string]*store.User, len(users))
	var firstUser *store.User
	for _, u := range users {
		user, created, err := im.CreateUser(ctx, UserInput{
			Name:    strings.TrimSpace(u.Name.First + " " + u.Name.Last),
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		})
		if err != nil {
			return summary, err
		}
		summary.Users.add(created)
		userEmails[u.ID.OID] = u.Email
		addedUsers[user.Email] = user
		if firstUser == nil {
			firstUser = user
		}
	}

	logger.Info("Adding categories")
	categories, err := readRecords[models.MongoCategory](im, dir, "category.json", &summary.Categories.Skipped)
	if err != nil {
		return summary, err
	}
	categorySlugs := make(map[string]string, len(categories))
	addedCategories := make(map[string]*store.Category, len(categories))
	for _, c := range categories {
		category, created, err := im.CreateCategory(ctx, CategoryInput{
			Name:           c.Name,
			Slug:           c.Slug,
			Description:    plaintext.Strip(c.Description),
			Status:         store.StatusPublished,
			SeoTitle:       c.SEO.Title,
			SeoDescription: c.SEO.Description,
			SeoKeywords:    c.SEO.Keywords,
		})
		if err != nil {
			return summary, err
		}
		summary.Categories.add(created)
		categorySlugs[c.ID.OID] = c.Slug
		addedCategories[category.Slug] = category
	}

	logger.Info("Adding tags")
	tags, err := readRecords[models.MongoTag](im, dir, "tag.json", &summary.Tags.Skipped)
	if err != nil {
		return summary, err
	}
	tagSlugs := make(map[string]string, len(tags))
	addedTags := make(map[string]*store.Tag, len(tags))
	for _, t := range tags {
		in := TagInput{Name: t.Name, Slug: t.Slug}
		if t.Category != nil {
			if category, ok := addedCategories[categorySlugs[t.Category.OID]]; ok {
				in.Category = &document.Ref{ID: category.ID}
			}
		}
		tag, created, err := im.CreateTag(ctx, in)
		if err != nil {
			return summary, err
		}
		summary.Tags.add(created)
		tagSlugs[t.ID.OID] = t.Slug
		addedTags[tag.Slug] = tag
	}

	logger.Info("Adding pages")
	pages, err := readRecords[models.MongoPage](im, dir, "page.json", &summary.Pages.Skipped)
	if err != nil {
		return summary, err
	}
	for _, p := range pages {
		image, err := im.mongoImage(ctx, p.Image, store.ImageTypePage, &summary)
		if err != nil {
			return summary, err
		}
		in := PageInput{
			Title: p.Title,
			Slug:  p.Slug,
			Content: document.Document{&document.Element{
				Type:     document.BlockParagraph,
				Children: []document.Node{&document.Text{Text: plaintext.Strip(p.Content.Extended)}},
			}},
			Status:         store.StatusPublished,
			SeoTitle:       p.SEO.Title,
			SeoDescription: p.SEO.Description,
			SeoKeywords:    p.SEO.Keywords,
			ViewsCount:     p.ViewsCount.Int(),
			Image:          image,
			ImageAlt:       p.ImageAlt,
		}
		if firstUser != nil {
			in.Author = &document.Ref{ID: firstUser.ID}
		}
		_, created, err := im.CreatePage(ctx, in)
		if err != nil {
			return summary, err
		}
		summary.Pages.add(created)
	}

	logger.Info("Adding posts")
	posts, err := readRecords[models.MongoPost](im, dir, "post.json", &summary.Posts.Skipped)
	if err != nil {
		return summary, err
	}
	for _, p := range posts {
		image, err := im.mongoImage(ctx, p.Image, store.ImageTypePost, &summary)
		if err != nil {
			return summary, err
		}
		in := PostInput{
			Title:          p.Title,
			Slug:           p.Slug,
			Brief:          plaintext.Strip(p.Content.Brief),
			Content:        document.ConvertHTML(p.Content.Extended, nil),
			Status:         store.StatusPublished,
			SeoTitle:       p.SEO.Title,
			SeoDescription: p.SEO.Description,
			SeoKeywords:    p.SEO.Keywords,
			ViewsCount:     p.ViewsCount.Int(),
			Image:          image,
			ImageAlt:       p.ImageAlt,
		}
		if p.PublishedDate != nil && !p.PublishedDate.IsZero() {
			t := p.PublishedDate.Time
			in.PublishDate = &t
		}
		if p.Author != nil {
			if author, ok := addedUsers[userEmails[p.Author.OID]]; ok {
				in.Author = &document.Ref{ID: author.ID}
			}
		}
		if p.Category != nil {
			if category, ok := addedCategories[categorySlugs[p.Category.OID]]; ok {
				in.Category = &document.Ref{ID: category.ID}
			}
		}
		var tagNames []string
		for _, id := range p.Tags {
			if tag, ok := addedTags[tagSlugs[id.OID]]; ok {
				in.Tags = append(in.Tags, document.Ref{ID: tag.ID})
				tagNames = append(tagNames, tag.Name)
			}
		}

		_, created, err := im.CreatePost(ctx, in)
		if err != nil {
			return summary, err
		}
		summary.Posts.add(created)
		if created {
			im.publish(ctx, in.Title, in.Content, tagNames)
		}
	}

	summary.log(MongoSubdir)
	return summary, nil
}

// mongoImage creates the image embedded in a page or post record.
func (im *Importer) mongoImage(ctx context.Context, img *models.MongoImage, typ store.ImageType, summary *Summary) (*document.Ref, error) {
	if img == nil {
		return nil, nil
	}
	image, created, err := im.CreateImage(ctx, ImageInput{
		Type:       typ,
		Filename:   img.Filename,
		LegacySize: int64(img.Size),
	})
	if errors.Is(err, ErrNoFilename) {
		logger.Warn("Skipping image", logger.Fields{"filename": img.Filename})
		summary.Images.Skipped++
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	summary.Images.add(created)
	return &document.Ref{ID: image.ID}, nil
}
