package gallery

import (
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/services"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetPublishedAlbumsAPI(c *fiber.Ctx) error {
	albums, err := database.GetPublishedAlbums(config.GetDB(), c.Query("category"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch albums"})
	}
	return c.JSON(albums)
}

func GetGalleryCategoriesAPI(c *fiber.Ctx) error {
	categories, err := database.GetGalleryCategories(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}

func GetAlbumAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	album, err := database.GetAlbumBySlug(db, c.Params("slug"))
	if err != nil || !album.IsPublished {
		return c.Status(404).JSON(fiber.Map{"error": "Album not found"})
	}

	photos, err := database.GetPhotosByAlbum(db, album.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch album"})
	}

	return c.JSON(fiber.Map{"album": album, "photos": photos})
}

// LikePhotoAPI counts at most one like per visitor IP.
func LikePhotoAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	photo, err := database.GetPhotoByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Photo not found"})
	}

	liked, err := database.LikePhoto(db, photo.ID, c.IP())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to like photo"})
	}
	if !liked {
		return c.JSON(fiber.Map{"liked": false, "likes_count": photo.LikesCount})
	}
	return c.JSON(fiber.Map{"liked": true, "likes_count": photo.LikesCount + 1})
}

func ViewPhotoAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	photo, err := database.GetPhotoByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Photo not found"})
	}
	if err := database.IncrementPhotoViews(db, photo.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record view"})
	}
	return c.JSON(fiber.Map{"views_count": photo.ViewsCount + 1})
}

func GetAllAlbumsAPI(c *fiber.Ctx) error {
	albums, err := database.GetAllAlbums(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch albums"})
	}
	return c.JSON(albums)
}

func CreateAlbumAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	type AlbumRequest struct {
		Title       string  `json:"title"`
		CategoryID  *string `json:"category_id"`
		Description string  `json:"description"`
		CoverImage  string  `json:"cover_image"`
		EventDate   *string `json:"event_date"`
		IsPublished bool    `json:"is_published"`
	}
	var req AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(req.Title, "required,min=1,max=200"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}

	slug, err := database.UniqueSlug(db, "albums", req.Title)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create album"})
	}

	album := &models.Album{
		Title:       req.Title,
		Slug:        slug,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPublished: req.IsPublished,
	}
	if req.EventDate != nil {
		if d, perr := time.Parse("2006-01-02", *req.EventDate); perr == nil {
			album.EventDate = &d
		}
	}

	if err := database.CreateAlbum(db, album); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create album"})
	}
	return c.Status(201).JSON(album)
}

func UpdateAlbumAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	album, err := database.GetAlbumByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Album not found"})
	}

	type AlbumRequest struct {
		Title       *string `json:"title"`
		CategoryID  *string `json:"category_id"`
		Description *string `json:"description"`
		CoverImage  *string `json:"cover_image"`
		EventDate   *string `json:"event_date"`
		IsPublished *bool   `json:"is_published"`
	}
	var req AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Title != nil {
		if err := validation.Var(*req.Title, "required,min=1,max=200"); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
		}
		album.Title = *req.Title
	}
	if req.CategoryID != nil {
		album.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		album.Description = *req.Description
	}
	if req.CoverImage != nil {
		album.CoverImage = *req.CoverImage
	}
	if req.EventDate != nil {
		if d, perr := time.Parse("2006-01-02", *req.EventDate); perr == nil {
			album.EventDate = &d
		}
	}
	if req.IsPublished != nil {
		album.IsPublished = *req.IsPublished
	}

	if err := database.UpdateAlbum(db, album); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update album"})
	}
	return c.JSON(album)
}

func DeleteAlbumAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	albumID := c.Params("id")

	photos, err := database.GetPhotosByAlbum(db, albumID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete album"})
	}

	if err := database.DeleteAlbum(db, albumID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete album"})
	}
	for _, p := range photos {
		services.DeleteUploadedImage(p.ImagePath)
	}
	return c.JSON(fiber.Map{"message": "Album deleted"})
}

// UploadPhotoAPI accepts a multipart image, stores it with a generated
// thumbnail and attaches it to the album.
func UploadPhotoAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	album, err := database.GetAlbumByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Album not found"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Image file is required"})
	}

	imagePath, thumbPath, err := services.SaveUploadedImage(fileHeader, "gallery")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to process image"})
	}

	photo := &models.Photo{
		AlbumID:       album.ID,
		Title:         c.FormValue("title"),
		Caption:       c.FormValue("caption"),
		ImagePath:     imagePath,
		ThumbnailPath: thumbPath,
	}
	if err := database.CreatePhoto(db, photo); err != nil {
		services.DeleteUploadedImage(imagePath)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save photo"})
	}
	return c.Status(201).JSON(photo)
}

func DeletePhotoAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	photo, err := database.GetPhotoByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Photo not found"})
	}
	if err := database.DeletePhoto(db, photo.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete photo"})
	}
	services.DeleteUploadedImage(photo.ImagePath)
	return c.JSON(fiber.Map{"message": "Photo deleted"})
}

func CreateGalleryCategoryAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var category models.GalleryCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Var(category.Name, "required,min=1,max=100"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	slug, err := database.UniqueSlug(db, "gallery_categories", category.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create category"})
	}
	category.Slug = slug
	category.IsActive = true

	if err := database.CreateGalleryCategory(db, &category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(201).JSON(category)
}
