package importer

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/logger"
	"github.com/takak2166/cmsimport/internal/models"
	"github.com/takak2166/cmsimport/internal/plaintext"
	"github.com/takak2166/cmsimport/internal/store"
)

// MySQLSubdir is the directory under the import root holding the MySQL export.
const MySQLSubdir = "mysql"

// adminUserID is the legacy id of the site owner.
const adminUserID = 1

// ImportMySQL imports <importDir>/mysql in dependency order.
func (im *Importer) ImportMySQL(ctx context.Context, importDir string) (Summary, error) {
	dir := filepath.Join(importDir, MySQLSubdir)
	logger.Info("Importing MySQL JSON data", logger.Fields{"dir": dir})

	var summary Summary
	var ignored int

	logger.Info("Adding users")
	users, err := readRecords[models.MySQLUser](im, dir, "user.json", &summary.Users.Skipped)
	if err != nil {
		return summary, err
	}
	profiles, err := readRecords[models.MySQLUserProfile](im, dir, "user_profile.json", &ignored)
	if err != nil {
		return summary, err
	}
	nicknames := make(map[models.FlexInt]string, len(profiles))
	for _, p := range profiles {
		if _, ok := nicknames[p.UserID]; !ok {
			nicknames[p.UserID] = p.Nickname
		}
	}

	userEmails := make(map[models.FlexInt]string, len(users))
	addedUsers := make(map[string]*store.User, len(users))
	var firstUser *store.User
	for _, u := range users {
		user, created, err := im.CreateUser(ctx, UserInput{
			Name:    nicknames[u.ID],
			Email:   u.Email,
			IsAdmin: u.ID == adminUserID,
		})
		if err != nil {
			return summary, err
		}
		summary.Users.add(created)
		userEmails[u.ID] = u.Email
		addedUsers[user.Email] = user
		if firstUser == nil {
			firstUser = user
		}
	}

	logger.Info("Adding categories")
	categories, err := readRecords[models.MySQLCategory](im, dir, "category.json", &summary.Categories.Skipped)
	if err != nil {
		return summary, err
	}
	categorySlugs := make(map[models.FlexInt]string, len(categories))
	for _, c := range categories {
		categorySlugs[c.ID] = c.Slug
	}
	addedCategories := make(map[string]*store.Category, len(categories))
	for _, c := range parentsFirst(categories) {
		in := CategoryInput{
			Name:           c.Name,
			Slug:           c.Slug,
			Description:    plaintext.Strip(c.Description),
			Status:         status(c.Status),
			SeoTitle:       c.MetaTitle,
			SeoDescription: c.MetaDescription,
			SeoKeywords:    c.MetaKeywords,
		}
		if c.ParentID != 0 {
			if parent, ok := addedCategories[categorySlugs[c.ParentID]]; ok {
				in.Parent = &document.Ref{ID: parent.ID}
			}
		}
		category, created, err := im.CreateCategory(ctx, in)
		if err != nil {
			return summary, err
		}
		summary.Categories.add(created)
		addedCategories[category.Slug] = category
	}

	logger.Info("Adding tags")
	tags, err := readRecords[models.MySQLTag](im, dir, "tag.json", &summary.Tags.Skipped)
	if err != nil {
		return summary, err
	}
	tagSlugs := make(map[models.FlexInt]string, len(tags))
	addedTags := make(map[string]*store.Tag, len(tags))
	for _, t := range tags {
		tag, created, err := im.CreateTag(ctx, TagInput{Name: t.Title, Slug: t.Slug})
		if err != nil {
			return summary, err
		}
		summary.Tags.add(created)
		tagSlugs[t.ID] = t.Slug
		addedTags[tag.Slug] = tag
	}

	logger.Info("Adding images")
	images, err := readRecords[models.MySQLImage](im, dir, "image.json", &summary.Images.Skipped)
	if err != nil {
		return summary, err
	}
	index := make(document.ImageIndex, len(images))
	for _, i := range images {
		image, created, err := im.CreateImage(ctx, ImageInput{Type: store.ImageTypeDocument, Filename: i.File})
		if errors.Is(err, ErrNoFilename) {
			logger.Warn("Skipping image", logger.Fields{"filename": i.File})
			summary.Images.Skipped++
			continue
		}
		if err != nil {
			return summary, err
		}
		summary.Images.add(created)
		index.Add(image.Filename, image.ID)
	}

	logger.Info("Adding pages")
	pages, err := readRecords[models.MySQLPage](im, dir, "page.json", &summary.Pages.Skipped)
	if err != nil {
		return summary, err
	}
	for _, p := range pages {
		in := PageInput{
			Title:          p.Title,
			Slug:           p.Slug,
			Content:        document.ConvertHTML(p.Content, index),
			Status:         store.StatusPublished,
			SeoTitle:       p.MetaTitle,
			SeoDescription: p.MetaDescription,
			SeoKeywords:    p.MetaKeywords,
			ViewsCount:     p.ViewsCount.Int(),
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
	posts, err := readRecords[models.MySQLPost](im, dir, "post.json", &summary.Posts.Skipped)
	if err != nil {
		return summary, err
	}
	postTags, err := readRecords[models.MySQLPostTag](im, dir, "post_tag.json", &ignored)
	if err != nil {
		return summary, err
	}
	tagsByPost := make(map[models.FlexInt][]models.FlexInt)
	for _, pt := range postTags {
		tagsByPost[pt.PostID] = append(tagsByPost[pt.PostID], pt.TagID)
	}

	for _, p := range posts {
		in := PostInput{
			Title:          p.Title,
			Slug:           p.Slug,
			Brief:          plaintext.Strip(p.Quote),
			Content:        document.ConvertHTML(p.Content, index),
			PublishDate:    unixTime(int64(p.PublishedAt)),
			Status:         status(p.Status),
			SeoTitle:       p.MetaTitle,
			SeoDescription: p.MetaDescription,
			SeoKeywords:    p.MetaKeywords,
			ViewsCount:     p.ViewCount.Int(),
			ImageAlt:       p.ImageAlt,
		}
		if p.Image != "" {
			image, created, err := im.CreateImage(ctx, ImageInput{Type: store.ImageTypePost, Filename: p.Image})
			switch {
			case errors.Is(err, ErrNoFilename):
				logger.Warn("Skipping image", logger.Fields{"filename": p.Image})
				summary.Images.Skipped++
			case err != nil:
				return summary, err
			default:
				summary.Images.add(created)
				in.Image = &document.Ref{ID: image.ID}
			}
		}
		if author, ok := addedUsers[userEmails[p.CreatedBy]]; ok {
			in.Author = &document.Ref{ID: author.ID}
		}
		if category, ok := addedCategories[categorySlugs[p.CategoryID]]; ok {
			in.Category = &document.Ref{ID: category.ID}
		}
		var tagNames []string
		for _, id := range tagsByPost[p.ID] {
			if tag, ok := addedTags[tagSlugs[id]]; ok {
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

	summary.log(MySQLSubdir)
	return summary, nil
}

// parentsFirst orders categories so that every parent precedes its
// children. Categories in a parent cycle keep their relative order at the end.
func parentsFirst(categories []models.MySQLCategory) []models.MySQLCategory {
	known := make(map[models.FlexInt]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	ordered := make([]models.MySQLCategory, 0, len(categories))
	placed := make(map[models.FlexInt]bool, len(categories))
	pending := categories
	for len(pending) > 0 {
		var rest []models.MySQLCategory
		for _, c := range pending {
			if c.ParentID == 0 || !known[c.ParentID] || placed[c.ParentID] {
				ordered = append(ordered, c)
				placed[c.ID] = true
				continue
			}
			rest = append(rest, c)
		}
		if len(rest) == len(pending) {
			return append(ordered, rest...)
		}
		pending = rest
	}
	return ordered
}

func status(v models.FlexInt) string {
	if v == models.StatusPublished {
		return store.StatusPublished
	}
	return store.StatusDraft
}

// unixTime converts a legacy epoch-seconds column. Zero means unset.
func unixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
