package gallery

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGalleryRoutes(app *fiber.App) {
	// Public pages
	app.Get("/gallery", GalleryPage)
	app.Get("/gallery/:slug", AlbumPage)

	// Public API
	api := app.Group("/api/gallery")
	api.Get("/albums", GetPublishedAlbumsAPI)
	api.Get("/categories", GetGalleryCategoriesAPI)
	api.Get("/albums/:slug", GetAlbumAPI)
	api.Post("/photos/:id/like", LikePhotoAPI)
	api.Post("/photos/:id/view", ViewPhotoAPI)

	// Admin management
	admin := auth.RequireUserType(models.UserTypeAdmin)
	app.Get("/admin/gallery", auth.AuthMiddleware, admin, AdminGalleryPage)

	manage := app.Group("/api/admin/gallery", auth.AuthMiddleware, admin)
	manage.Get("/albums", GetAllAlbumsAPI)
	manage.Post("/albums", CreateAlbumAPI)
	manage.Put("/albums/:id", UpdateAlbumAPI)
	manage.Delete("/albums/:id", DeleteAlbumAPI)
	manage.Post("/albums/:id/photos", UploadPhotoAPI)
	manage.Delete("/photos/:id", DeletePhotoAPI)
	manage.Post("/categories", CreateGalleryCategoryAPI)
}

func GalleryPage(c *fiber.Ctx) error {
	db := config.GetDB()

	albums, err := database.GetPublishedAlbums(db, c.Query("category"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load gallery")
	}
	categories, err := database.GetGalleryCategories(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load gallery")
	}

	return c.Render("gallery/index", fiber.Map{
		"Title":      "Gallery",
		"Albums":     albums,
		"Categories": categories,
	})
}

func AlbumPage(c *fiber.Ctx) error {
	db := config.GetDB()

	album, err := database.GetAlbumBySlug(db, c.Params("slug"))
	if err != nil || !album.IsPublished {
		return fiber.NewError(fiber.StatusNotFound, "Album not found")
	}

	photos, err := database.GetPhotosByAlbum(db, album.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load album")
	}

	return c.Render("gallery/album", fiber.Map{
		"Title":  album.Title,
		"Album":  album,
		"Photos": photos,
	})
}

func AdminGalleryPage(c *fiber.Ctx) error {
	db := config.GetDB()

	albums, err := database.GetAllAlbums(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load gallery")
	}
	categories, err := database.GetGalleryCategories(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load gallery")
	}

	return c.Render("gallery/admin", fiber.Map{
		"Title":      "Manage Gallery",
		"Albums":     albums,
		"Categories": categories,
	})
}
