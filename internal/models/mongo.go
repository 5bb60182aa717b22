package models

// Records of the Mongo-derived export (mongoexport --jsonArray).

// MongoSEO holds the seo sub-document shared by categories, pages and posts
type MongoSEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// MongoImage is the embedded image reference of a page or post
type MongoImage struct {
	Filename string  `json:"filename"`
	Size     FlexInt `json:"size"`
	Width    FlexInt `json:"width"`
	Height   FlexInt `json:"height"`
}

// MongoContent holds the HTML bodies of a page or post
type MongoContent struct {
	Brief    string `json:"brief"`
	Extended string `json:"extended"`
}

type MongoUser struct {
	ID   ObjectID `json:"_id"`
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"isAdmin"`
}

type MongoCategory struct {
	ID          ObjectID `json:"_id"`
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Description string   `json:"description"`
	SEO         MongoSEO `json:"seo"`
}

type MongoTag struct {
	ID       ObjectID  `json:"_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug" validate:"required"`
	Category *ObjectID `json:"category"`
}

type MongoPage struct {
	ID         ObjectID     `json:"_id"`
	Title      string       `json:"title" validate:"required"`
	Slug       string       `json:"slug" validate:"required"`
	Content    MongoContent `json:"content"`
	SEO        MongoSEO     `json:"seo"`
	ViewsCount FlexInt      `json:"viewsCount"`
	Image      *MongoImage  `json:"image" validate:"omitempty"`
	ImageAlt   string       `json:"imageAlt"`
}

type MongoPost struct {
	ID            ObjectID     `json:"_id"`
	Title         string       `json:"title" validate:"required"`
	Slug          string       `json:"slug" validate:"required"`
	Content       MongoContent `json:"content"`
	PublishedDate *Date        `json:"publishedDate"`
	SEO           MongoSEO     `json:"seo"`
	ViewsCount    FlexInt      `json:"viewsCount"`
	Image         *MongoImage  `json:"image" validate:"omitempty"`
	ImageAlt      string       `json:"imageAlt"`
	Author        *ObjectID    `json:"author"`
	Category      *ObjectID    `json:"category"`
	Tags          []ObjectID   `json:"tags"`
}
