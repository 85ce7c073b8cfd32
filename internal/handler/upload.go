package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/house-listing-api/internal/config"
	"github.com/iliyamo/house-listing-api/internal/storage"
)

// UploadHandler accepts multipart image uploads and hands the files to
// the configured storage backend (local disk or S3). It knows nothing
// about listings: clients upload first, then attach the returned URLs
// to a house via the images endpoint.
type UploadHandler struct {
	Cfg   config.Config
	Store storage.Storage
}

func NewUploadHandler(cfg config.Config, store storage.Storage) *UploadHandler {
	return &UploadHandler{Cfg: cfg, Store: store}
}

// Upload handles POST /api/upload. The multipart field "images" may
// carry up to MaxUploadFiles files; requests with none are a 400 and
// any parse or storage failure is a 500 with a generic message. On
// success the stored URLs are returned in upload order.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image files provided"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image files provided"})
	}
	max := h.Cfg.MaxUploadFiles
	if max > 0 && len(files) > max {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Too many files"})
	}

	imageURLs := make([]string, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "File upload failed"})
		}
		url, err := h.Store.Save(c.Request().Context(), fh.Filename, fh.Header.Get("Content-Type"), src)
		src.Close()
		if err != nil {
			// Files stored before the failure are left in place; the
			// client retries the whole request.
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "File upload failed"})
		}
		imageURLs = append(imageURLs, url)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "imageUrls": imageURLs})
}
