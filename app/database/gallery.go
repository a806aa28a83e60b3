package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const albumSelect = `SELECT a.id, a.title, a.slug, a.category_id, a.description, a.cover_image,
		a.event_date, a.is_published, a.created_at, a.updated_at,
		COALESCE(c.name, ''),
		(SELECT COUNT(*) FROM photos p WHERE p.album_id = a.id)
		FROM albums a
		LEFT JOIN gallery_categories c ON a.category_id = c.id`

func scanAlbum(row interface{ Scan(...interface{}) error }) (*models.Album, error) {
	a := &models.Album{}
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.CategoryID, &a.Description, &a.CoverImage,
		&a.EventDate, &a.IsPublished, &a.CreatedAt, &a.UpdatedAt, &a.CategoryName, &a.PhotoCount)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectAlbums(rows *sql.Rows) ([]*models.Album, error) {
	defer rows.Close()
	var albums []*models.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	if albums == nil {
		albums = []*models.Album{}
	}
	return albums, rows.Err()
}

func GetGalleryCategories(db *sql.DB) ([]*models.GalleryCategory, error) {
	rows, err := db.Query(`SELECT c.id, c.name, c.slug, c.description, c.is_active, c.created_at,
						   (SELECT COUNT(*) FROM albums a WHERE a.category_id = c.id AND a.is_published)
						   FROM gallery_categories c WHERE c.is_active = true ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.GalleryCategory
	for rows.Next() {
		c := &models.GalleryCategory{}
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.AlbumCount)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if categories == nil {
		categories = []*models.GalleryCategory{}
	}
	return categories, rows.Err()
}

func CreateGalleryCategory(db *sql.DB, c *models.GalleryCategory) error {
	slug, err := UniqueSlug(db, "gallery_categories", c.Name)
	if err != nil {
		return err
	}
	c.Slug = slug
	return db.QueryRow(`INSERT INTO gallery_categories (name, slug, description)
						VALUES ($1, $2, $3) RETURNING id, is_active, created_at`,
		c.Name, c.Slug, c.Description).Scan(&c.ID, &c.IsActive, &c.CreatedAt)
}

// GetPublishedAlbums lists published albums, most recent event first.
func GetPublishedAlbums(db *sql.DB, categorySlug string) ([]*models.Album, error) {
	query := albumSelect + ` WHERE a.is_published = true`
	args := []interface{}{}
	if categorySlug != "" {
		args = append(args, categorySlug)
		query += ` AND c.slug = $1`
	}
	query += ` ORDER BY a.event_date DESC NULLS LAST, a.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectAlbums(rows)
}

func GetAllAlbums(db *sql.DB) ([]*models.Album, error) {
	rows, err := db.Query(albumSelect + ` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectAlbums(rows)
}

func GetAlbumBySlug(db *sql.DB, slug string) (*models.Album, error) {
	return scanAlbum(db.QueryRow(albumSelect+` WHERE a.slug = $1`, slug))
}

func GetAlbumByID(db *sql.DB, id string) (*models.Album, error) {
	return scanAlbum(db.QueryRow(albumSelect+` WHERE a.id = $1`, id))
}

func CreateAlbum(db *sql.DB, a *models.Album) error {
	slug, err := UniqueSlug(db, "albums", a.Title)
	if err != nil {
		return err
	}
	a.Slug = slug
	query := `INSERT INTO albums (title, slug, category_id, description, cover_image, event_date, is_published)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.Title, a.Slug, a.CategoryID, a.Description, a.CoverImage,
		a.EventDate, a.IsPublished).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func UpdateAlbum(db *sql.DB, a *models.Album) error {
	query := `UPDATE albums SET title = $1, category_id = $2, description = $3, cover_image = $4,
			  event_date = $5, is_published = $6, updated_at = NOW()
			  WHERE id = $7 RETURNING updated_at`
	return db.QueryRow(query, a.Title, a.CategoryID, a.Description, a.CoverImage,
		a.EventDate, a.IsPublished, a.ID).Scan(&a.UpdatedAt)
}

func DeleteAlbum(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM albums WHERE id = $1`, id)
	return err
}

func GetPhotosByAlbum(db *sql.DB, albumID string) ([]*models.Photo, error) {
	rows, err := db.Query(`SELECT p.id, p.album_id, p.title, p.caption, p.image_path, p.thumbnail_path,
						   p.likes_count, p.views_count, p.created_at, a.title
						   FROM photos p JOIN albums a ON p.album_id = a.id
						   WHERE p.album_id = $1 ORDER BY p.created_at`, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*models.Photo
	for rows.Next() {
		p := &models.Photo{}
		err := rows.Scan(&p.ID, &p.AlbumID, &p.Title, &p.Caption, &p.ImagePath, &p.ThumbnailPath,
			&p.LikesCount, &p.ViewsCount, &p.CreatedAt, &p.AlbumTitle)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	if photos == nil {
		photos = []*models.Photo{}
	}
	return photos, rows.Err()
}

func GetPhotoByID(db *sql.DB, id string) (*models.Photo, error) {
	p := &models.Photo{}
	err := db.QueryRow(`SELECT p.id, p.album_id, p.title, p.caption, p.image_path, p.thumbnail_path,
						p.likes_count, p.views_count, p.created_at, a.title
						FROM photos p JOIN albums a ON p.album_id = a.id WHERE p.id = $1`, id).
		Scan(&p.ID, &p.AlbumID, &p.Title, &p.Caption, &p.ImagePath, &p.ThumbnailPath,
			&p.LikesCount, &p.ViewsCount, &p.CreatedAt, &p.AlbumTitle)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePhoto(db *sql.DB, p *models.Photo) error {
	return db.QueryRow(`INSERT INTO photos (album_id, title, caption, image_path, thumbnail_path)
						VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		p.AlbumID, p.Title, p.Caption, p.ImagePath, p.ThumbnailPath).Scan(&p.ID, &p.CreatedAt)
}

func DeletePhoto(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM photos WHERE id = $1`, id)
	return err
}

func IncrementPhotoViews(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE photos SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

// LikePhoto records one like per visitor IP. It returns false without
// error when this IP already liked the photo.
func LikePhoto(db *sql.DB, photoID, ipAddress string) (bool, error) {
	result, err := db.Exec(`INSERT INTO photo_likes (photo_id, ip_address)
							VALUES ($1, $2) ON CONFLICT DO NOTHING`, photoID, ipAddress)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}
	_, err = db.Exec(`UPDATE photos SET likes_count = likes_count + 1 WHERE id = $1`, photoID)
	return true, err
}
