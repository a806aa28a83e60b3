package database

import (
	"database/sql"
	"strconv"

	"stmarys-portal/app/models"
)

const articleSelect = `SELECT a.id, a.title, a.slug, a.category_id, a.author_id, a.excerpt, a.content,
		a.featured_image, a.tags, a.meta_description, a.is_published, a.is_featured, a.published_at,
		a.views_count, a.likes_count, a.created_at, a.updated_at,
		COALESCE(c.name, ''), COALESCE(u.first_name || ' ' || u.last_name, ''),
		(SELECT COUNT(*) FROM article_comments ac WHERE ac.article_id = a.id AND ac.is_approved)
		FROM news_articles a
		LEFT JOIN news_categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id`

func scanArticle(row interface{ Scan(...interface{}) error }) (*models.NewsArticle, error) {
	a := &models.NewsArticle{}
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.CategoryID, &a.AuthorID, &a.Excerpt, &a.Content,
		&a.FeaturedImage, &a.Tags, &a.MetaDescription, &a.IsPublished, &a.IsFeatured, &a.PublishedAt,
		&a.ViewsCount, &a.LikesCount, &a.CreatedAt, &a.UpdatedAt,
		&a.CategoryName, &a.AuthorName, &a.CommentCount)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectArticles(rows *sql.Rows) ([]*models.NewsArticle, error) {
	defer rows.Close()
	var articles []*models.NewsArticle
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if articles == nil {
		articles = []*models.NewsArticle{}
	}
	return articles, rows.Err()
}

func GetNewsCategories(db *sql.DB) ([]*models.NewsCategory, error) {
	rows, err := db.Query(`SELECT c.id, c.name, c.slug, c.description, c.is_active, c.created_at,
						   (SELECT COUNT(*) FROM news_articles a WHERE a.category_id = c.id AND a.is_published)
						   FROM news_categories c WHERE c.is_active = true ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.NewsCategory
	for rows.Next() {
		c := &models.NewsCategory{}
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.ArticleCount)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if categories == nil {
		categories = []*models.NewsCategory{}
	}
	return categories, rows.Err()
}

func GetNewsCategoryBySlug(db *sql.DB, slug string) (*models.NewsCategory, error) {
	c := &models.NewsCategory{}
	err := db.QueryRow(`SELECT id, name, slug, description, is_active, created_at
						FROM news_categories WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateNewsCategory(db *sql.DB, c *models.NewsCategory) error {
	slug, err := UniqueSlug(db, "news_categories", c.Name)
	if err != nil {
		return err
	}
	c.Slug = slug
	return db.QueryRow(`INSERT INTO news_categories (name, slug, description)
						VALUES ($1, $2, $3) RETURNING id, is_active, created_at`,
		c.Name, c.Slug, c.Description).Scan(&c.ID, &c.IsActive, &c.CreatedAt)
}

// GetPublishedArticles lists published articles, newest first,
// optionally restricted to a category slug.
func GetPublishedArticles(db *sql.DB, categorySlug string, limit int) ([]*models.NewsArticle, error) {
	query := articleSelect + ` WHERE a.is_published = true`
	args := []interface{}{}
	if categorySlug != "" {
		args = append(args, categorySlug)
		query += ` AND c.slug = $1`
	}
	query += ` ORDER BY a.published_at DESC NULLS LAST`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectArticles(rows)
}

func GetFeaturedArticles(db *sql.DB, limit int) ([]*models.NewsArticle, error) {
	query := articleSelect + ` WHERE a.is_published = true AND a.is_featured = true
			 ORDER BY a.published_at DESC NULLS LAST LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	return collectArticles(rows)
}

func GetArticleBySlug(db *sql.DB, slug string) (*models.NewsArticle, error) {
	return scanArticle(db.QueryRow(articleSelect+` WHERE a.slug = $1`, slug))
}

func GetArticleByID(db *sql.DB, id string) (*models.NewsArticle, error) {
	return scanArticle(db.QueryRow(articleSelect+` WHERE a.id = $1`, id))
}

func GetAllArticles(db *sql.DB) ([]*models.NewsArticle, error) {
	rows, err := db.Query(articleSelect + ` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectArticles(rows)
}

func CreateArticle(db *sql.DB, a *models.NewsArticle) error {
	slug, err := UniqueSlug(db, "news_articles", a.Title)
	if err != nil {
		return err
	}
	a.Slug = slug
	query := `INSERT INTO news_articles (title, slug, category_id, author_id, excerpt, content,
			  featured_image, tags, meta_description, is_published, is_featured, published_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
					  CASE WHEN $10 THEN NOW() ELSE NULL END)
			  RETURNING id, published_at, created_at, updated_at`
	return db.QueryRow(query, a.Title, a.Slug, a.CategoryID, a.AuthorID, a.Excerpt, a.Content,
		a.FeaturedImage, a.Tags, a.MetaDescription, a.IsPublished, a.IsFeatured).
		Scan(&a.ID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateArticle rewrites the mutable fields. The slug is stable across
// title edits; published_at is set on the first publish only.
func UpdateArticle(db *sql.DB, a *models.NewsArticle) error {
	query := `UPDATE news_articles SET title = $1, category_id = $2, excerpt = $3, content = $4,
			  featured_image = $5, tags = $6, meta_description = $7, is_published = $8, is_featured = $9,
			  published_at = CASE WHEN $8 AND published_at IS NULL THEN NOW() ELSE published_at END,
			  updated_at = NOW()
			  WHERE id = $10 RETURNING published_at, updated_at`
	return db.QueryRow(query, a.Title, a.CategoryID, a.Excerpt, a.Content, a.FeaturedImage,
		a.Tags, a.MetaDescription, a.IsPublished, a.IsFeatured, a.ID).
		Scan(&a.PublishedAt, &a.UpdatedAt)
}

func DeleteArticle(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM news_articles WHERE id = $1`, id)
	return err
}

func IncrementArticleViews(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE news_articles SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

// LikeArticle records one like per visitor IP. It returns false without
// error when this IP already liked the article.
func LikeArticle(db *sql.DB, articleID, ipAddress string) (bool, error) {
	result, err := db.Exec(`INSERT INTO article_likes (article_id, ip_address)
							VALUES ($1, $2) ON CONFLICT DO NOTHING`, articleID, ipAddress)
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
	_, err = db.Exec(`UPDATE news_articles SET likes_count = likes_count + 1 WHERE id = $1`, articleID)
	return true, err
}

func GetArticleComments(db *sql.DB, articleID string) ([]*models.ArticleComment, error) {
	rows, err := db.Query(`SELECT id, article_id, name, email, comment, ip_address, is_approved, created_at
						   FROM article_comments WHERE article_id = $1 AND is_approved = true
						   ORDER BY created_at`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.ArticleComment
	for rows.Next() {
		c := &models.ArticleComment{}
		err := rows.Scan(&c.ID, &c.ArticleID, &c.Name, &c.Email, &c.Comment, &c.IPAddress,
			&c.IsApproved, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if comments == nil {
		comments = []*models.ArticleComment{}
	}
	return comments, rows.Err()
}

func CreateArticleComment(db *sql.DB, c *models.ArticleComment) error {
	return db.QueryRow(`INSERT INTO article_comments (article_id, name, email, comment, ip_address)
						VALUES ($1, $2, $3, $4, $5) RETURNING id, is_approved, created_at`,
		c.ArticleID, c.Name, c.Email, c.Comment, c.IPAddress).
		Scan(&c.ID, &c.IsApproved, &c.CreatedAt)
}
