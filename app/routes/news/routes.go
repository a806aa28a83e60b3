package news

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupNewsRoutes(app *fiber.App) {
	// Public pages
	app.Get("/news", NewsListPage)
	app.Get("/news/:slug", NewsDetailPage)

	// Public API
	api := app.Group("/api/news")
	api.Get("/", GetPublishedArticlesAPI)
	api.Get("/featured", GetFeaturedArticlesAPI)
	api.Get("/categories", GetNewsCategoriesAPI)
	api.Get("/:slug", GetArticleAPI)
	api.Get("/:slug/comments", GetArticleCommentsAPI)
	api.Post("/:slug/like", LikeArticleAPI)
	api.Post("/:slug/comments", CreateArticleCommentAPI)

	// Admin management
	admin := auth.RequireUserType(models.UserTypeAdmin)
	app.Get("/admin/news", auth.AuthMiddleware, admin, AdminNewsPage)

	manage := app.Group("/api/admin/news", auth.AuthMiddleware, admin)
	manage.Get("/", GetAllArticlesAPI)
	manage.Post("/", CreateArticleAPI)
	manage.Post("/categories", CreateNewsCategoryAPI)
	manage.Put("/:id", UpdateArticleAPI)
	manage.Delete("/:id", DeleteArticleAPI)
}

func NewsListPage(c *fiber.Ctx) error {
	db := config.GetDB()

	articles, err := database.GetPublishedArticles(db, c.Query("category"), 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}
	categories, err := database.GetNewsCategories(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}
	featured, err := database.GetFeaturedArticles(db, 3)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}

	return c.Render("news/index", fiber.Map{
		"Title":      "News",
		"Articles":   articles,
		"Categories": categories,
		"Featured":   featured,
	})
}

func NewsDetailPage(c *fiber.Ctx) error {
	db := config.GetDB()

	article, err := database.GetArticleBySlug(db, c.Params("slug"))
	if err != nil || !article.IsPublished {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	if err := database.IncrementArticleViews(db, article.ID); err == nil {
		article.ViewsCount++
	}

	comments, err := database.GetArticleComments(db, article.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load article")
	}

	return c.Render("news/detail", fiber.Map{
		"Title":    article.Title,
		"Article":  article,
		"Comments": comments,
	})
}

func AdminNewsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	articles, err := database.GetAllArticles(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}
	categories, err := database.GetNewsCategories(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}

	return c.Render("news/admin", fiber.Map{
		"Title":      "Manage News",
		"Articles":   articles,
		"Categories": categories,
	})
}
