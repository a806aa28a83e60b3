package news

import (
	"strconv"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetPublishedArticlesAPI(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	articles, err := database.GetPublishedArticles(config.GetDB(), c.Query("category"), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch articles"})
	}
	return c.JSON(articles)
}

func GetFeaturedArticlesAPI(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 3
	}

	articles, err := database.GetFeaturedArticles(config.GetDB(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch articles"})
	}
	return c.JSON(articles)
}

func GetNewsCategoriesAPI(c *fiber.Ctx) error {
	categories, err := database.GetNewsCategories(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}

func GetArticleAPI(c *fiber.Ctx) error {
	article, err := database.GetArticleBySlug(config.GetDB(), c.Params("slug"))
	if err != nil || !article.IsPublished {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}
	return c.JSON(article)
}

func GetArticleCommentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	article, err := database.GetArticleBySlug(db, c.Params("slug"))
	if err != nil || !article.IsPublished {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}

	comments, err := database.GetArticleComments(db, article.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch comments"})
	}
	return c.JSON(comments)
}

// LikeArticleAPI counts at most one like per visitor IP.
func LikeArticleAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	article, err := database.GetArticleBySlug(db, c.Params("slug"))
	if err != nil || !article.IsPublished {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}

	liked, err := database.LikeArticle(db, article.ID, c.IP())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to like article"})
	}
	if !liked {
		return c.JSON(fiber.Map{"liked": false, "likes_count": article.LikesCount})
	}
	return c.JSON(fiber.Map{"liked": true, "likes_count": article.LikesCount + 1})
}

func CreateArticleCommentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	article, err := database.GetArticleBySlug(db, c.Params("slug"))
	if err != nil || !article.IsPublished {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}

	type CommentRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Comment string `json:"comment"`
	}
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(req.Name, "required,min=1,max=100"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}
	if req.Email != "" {
		if err := validation.Var(req.Email, "email"); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid email address"})
		}
	}
	if err := validation.Var(req.Comment, "required,min=1"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Comment is required"})
	}

	comment := &models.ArticleComment{
		ArticleID: article.ID,
		Name:      req.Name,
		Email:     req.Email,
		Comment:   req.Comment,
		IPAddress: c.IP(),
	}
	if err := database.CreateArticleComment(db, comment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit comment"})
	}
	// Comments appear publicly only after approval
	return c.Status(201).JSON(fiber.Map{"message": "Comment submitted for review"})
}

func GetAllArticlesAPI(c *fiber.Ctx) error {
	articles, err := database.GetAllArticles(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch articles"})
	}
	return c.JSON(articles)
}

func CreateArticleAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var article models.NewsArticle
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(article.Title, "required,min=1,max=200"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}
	if err := validation.Var(article.Content, "required"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Content is required"})
	}

	slug, err := database.UniqueSlug(db, "news_articles", article.Title)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create article"})
	}
	article.Slug = slug

	userID := c.Locals("user_id").(string)
	article.AuthorID = &userID

	if err := database.CreateArticle(db, &article); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create article"})
	}
	return c.Status(201).JSON(article)
}

func CreateNewsCategoryAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var category models.NewsCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(category.Name, "required,min=1,max=100"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	slug, err := database.UniqueSlug(db, "news_categories", category.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create category"})
	}
	category.Slug = slug
	category.IsActive = true

	if err := database.CreateNewsCategory(db, &category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(201).JSON(category)
}

// UpdateArticleAPI edits an article in place. The slug never changes,
// so published links stay valid.
func UpdateArticleAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	existing, err := database.GetArticleByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}

	var article models.NewsArticle
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(article.Title, "required,min=1,max=200"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}
	if err := validation.Var(article.Content, "required"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Content is required"})
	}

	article.ID = existing.ID
	article.Slug = existing.Slug
	article.AuthorID = existing.AuthorID
	article.PublishedAt = existing.PublishedAt

	if err := database.UpdateArticle(db, &article); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update article"})
	}
	return c.JSON(article)
}

func DeleteArticleAPI(c *fiber.Ctx) error {
	if err := database.DeleteArticle(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete article"})
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}
