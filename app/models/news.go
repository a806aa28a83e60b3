package models

import "time"

type NewsCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	ArticleCount int `json:"article_count,omitempty"`
}

type NewsArticle struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	CategoryID      *string    `json:"category_id,omitempty"`
	AuthorID        *string    `json:"author_id,omitempty"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image,omitempty"`
	Tags            string     `json:"tags,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	IsPublished     bool       `json:"is_published"`
	IsFeatured      bool       `json:"is_featured"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ViewsCount      int        `json:"views_count"`
	LikesCount      int        `json:"likes_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	CategoryName string `json:"category_name,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	CommentCount int    `json:"comment_count,omitempty"`
}

// ArticleLike records one like per (article, ip) pair.
type ArticleLike struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

type ArticleComment struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Comment    string    `json:"comment"`
	IPAddress  string    `json:"ip_address"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
