package handler // handler package contains the image sub-resource handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/house-listing-api/internal/store"
)

// AppendImages handles POST /api/houses/:id/images and appends the
// given URLs to the end of the listing's image sequence, preserving
// their order. The body must carry an "imageUrls" array; anything else
// is a 400.
func (h *HouseHandler) AppendImages(c echo.Context) error {
	id, err := parseHouseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	var body struct {
		ImageURLs []string `json:"imageUrls"` // URLs to append, in order
	}
	if err := c.Bind(&body); err != nil { // a non-array value fails the bind
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Image URLs array is required"})
	}
	house, err := h.Houses.AppendImages(id, body.ImageURLs)
	if err != nil {
		if errors.Is(err, store.ErrHouseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
		}
		// The field was absent from the payload entirely.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Image URLs array is required"})
	}
	return c.JSON(http.StatusOK, house)
}

// RemoveImage handles DELETE /api/houses/:id/images/:imageIndex and
// removes exactly the image at that position, shifting later images
// left. Images have no ids of their own, so the index refers to the
// sequence as it stands when the request is processed.
func (h *HouseHandler) RemoveImage(c echo.Context) error {
	id, err := parseHouseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	index, err := strconv.Atoi(c.Param("imageIndex"))
	if err != nil { // non-numeric index can never be in range
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image index"})
	}
	house, err := h.Houses.RemoveImageAt(id, index)
	if err != nil {
		if errors.Is(err, store.ErrHouseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image index"})
	}
	return c.JSON(http.StatusOK, house)
}
