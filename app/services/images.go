package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadRoot     = "./static/uploads"
	thumbnailWidth = 400
	maxImageWidth  = 1920
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImage stores an uploaded image under static/uploads/<folder>/
// and writes a resized thumbnail next to it. It returns web paths for both.
func SaveUploadedImage(fileHeader *multipart.FileHeader, folder string) (imagePath, thumbPath string, err error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return "", "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(uploadRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	fullPath := filepath.Join(dir, name)

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	// Cap the stored size, phones upload huge originals
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, fullPath); err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbName := "thumb-" + name
	if err := imaging.Save(thumb, filepath.Join(dir, thumbName)); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	webBase := "/static/uploads/" + folder + "/"
	return webBase + name, webBase + thumbName, nil
}

// DeleteUploadedImage removes a stored image and its thumbnail if the
// path points inside the upload root. Missing files are not an error.
func DeleteUploadedImage(webPath string) {
	if !strings.HasPrefix(webPath, "/static/uploads/") {
		return
	}
	rel := strings.TrimPrefix(webPath, "/static/uploads/")
	os.Remove(filepath.Join(uploadRoot, rel))

	dir, name := filepath.Split(rel)
	if !strings.HasPrefix(name, "thumb-") {
		os.Remove(filepath.Join(uploadRoot, dir, "thumb-"+name))
	}
}
