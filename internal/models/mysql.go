package models

// Records of the MySQL-derived export. Numeric columns use FlexInt because
// phpMyAdmin writes every value as a string.

type MySQLUser struct {
	ID    FlexInt `json:"id" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
}

type MySQLUserProfile struct {
	UserID   FlexInt `json:"user_id" validate:"required"`
	Nickname string  `json:"nick_nm"`
}

type MySQLCategory struct {
	ID              FlexInt `json:"id" validate:"required"`
	ParentID        FlexInt `json:"parent_id"`
	Name            string  `json:"name" validate:"required"`
	Slug            string  `json:"slug" validate:"required"`
	Description     string  `json:"description"`
	Status          FlexInt `json:"status"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	MetaKeywords    string  `json:"meta_keywords"`
}

type MySQLTag struct {
	ID    FlexInt `json:"id" validate:"required"`
	Title string  `json:"title"`
	Slug  string  `json:"slug" validate:"required"`
}

type MySQLImage struct {
	ID   FlexInt `json:"id"`
	File string  `json:"file" validate:"required"`
}

type MySQLPage struct {
	ID              FlexInt `json:"id"`
	Title           string  `json:"title" validate:"required"`
	Slug            string  `json:"slug" validate:"required"`
	Content         string  `json:"content"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	MetaKeywords    string  `json:"meta_keywords"`
	ViewsCount      FlexInt `json:"viewsCount"`
}

type MySQLPost struct {
	ID              FlexInt `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Slug            string  `json:"slug" validate:"required"`
	Quote           string  `json:"quote"`
	Content         string  `json:"content"`
	PublishedAt     FlexInt `json:"published_at"`
	Status          FlexInt `json:"status"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	MetaKeywords    string  `json:"meta_keywords"`
	ViewCount       FlexInt `json:"view_count"`
	Image           string  `json:"image"`
	ImageAlt        string  `json:"image_alt"`
	CreatedBy       FlexInt `json:"created_by"`
	CategoryID      FlexInt `json:"category_id"`
}

type MySQLPostTag struct {
	PostID FlexInt `json:"post_id" validate:"required"`
	TagID  FlexInt `json:"tag_id" validate:"required"`
}

// StatusPublished is the status column value of published rows.
const StatusPublished = 1
