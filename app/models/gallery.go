package models

import "time"

type GalleryCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	AlbumCount int `json:"album_count,omitempty"`
}

type Album struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Description string     `json:"description,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	CategoryName string `json:"category_name,omitempty"`
	PhotoCount   int    `json:"photo_count,omitempty"`
}

type Photo struct {
	ID            string    `json:"id"`
	AlbumID       string    `json:"album_id"`
	Title         string    `json:"title,omitempty"`
	Caption       string    `json:"caption,omitempty"`
	ImagePath     string    `json:"image_path"`
	ThumbnailPath string    `json:"thumbnail_path,omitempty"`
	LikesCount    int       `json:"likes_count"`
	ViewsCount    int       `json:"views_count"`
	CreatedAt     time.Time `json:"created_at"`

	AlbumTitle string `json:"album_title,omitempty"`
}

// PhotoLike records one like per (photo, ip) pair.
type PhotoLike struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photo_id"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
