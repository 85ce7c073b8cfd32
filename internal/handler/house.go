package handler // handler package contains the HTTP handlers for house listings

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/house-listing-api/internal/config"
	"github.com/iliyamo/house-listing-api/internal/model"
	q "github.com/iliyamo/house-listing-api/internal/queue"
	queue_publisher "github.com/iliyamo/house-listing-api/internal/service"
	"github.com/iliyamo/house-listing-api/internal/store"
)

// HouseHandler bundles dependencies for the house CRUD endpoints. The
// store is the single owner of all listing state; the handler only
// translates between HTTP and store operations.
type HouseHandler struct {
	Cfg    config.Config
	Houses *store.HouseStore
}

func NewHouseHandler(cfg config.Config, houses *store.HouseStore) *HouseHandler {
	return &HouseHandler{Cfg: cfg, Houses: houses}
}

// houseBody is the JSON payload for create and update. Price tolerates
// both string and numeric input (see model.Price).
type houseBody struct {
	Title       string      `json:"title"`
	Price       model.Price `json:"price"`
	Address     string      `json:"address"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
}

// List handles GET /api/houses and returns every listing in creation order.
func (h *HouseHandler) List(c echo.Context) error {
	// Listing is public and cannot fail; an empty store yields [].
	return c.JSON(http.StatusOK, h.Houses.List())
}

// Get handles GET /api/houses/:id and returns a single listing.
func (h *HouseHandler) Get(c echo.Context) error {
	id, err := parseHouseID(c)
	if err != nil { // a non-numeric id can never match a listing
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	house, err := h.Houses.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	return c.JSON(http.StatusOK, house)
}

// Create handles POST /api/houses and creates a new listing. Requires
// an admin session (enforced by middleware). Title, price and address
// are mandatory; description defaults to empty and status to
// "available".
func (h *HouseHandler) Create(c echo.Context) error {
	var body houseBody
	if err := c.Bind(&body); err != nil { // attempt to bind the request body
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title, price, and address are required"})
	}
	house, err := h.Houses.Create(store.CreateHouse{
		Title:       body.Title,
		Price:       body.Price,
		Address:     body.Address,
		Description: body.Description,
		Status:      body.Status,
	})
	if err != nil {
		// The only store failure for create is missing required fields.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title, price, and address are required"})
	}
	h.publish(q.ActionCreated, house)
	return c.JSON(http.StatusCreated, house) // return 201 and the created listing
}

// Update handles PUT /api/houses/:id and merges the provided fields
// into an existing listing. Fields left empty (or a price of 0) keep
// their stored value; id and createdAt can never change.
func (h *HouseHandler) Update(c echo.Context) error {
	id, err := parseHouseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	var body houseBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	house, err := h.Houses.Update(id, store.UpdateHouse{
		Title:       body.Title,
		Price:       body.Price,
		Address:     body.Address,
		Description: body.Description,
		Status:      body.Status,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	h.publish(q.ActionUpdated, house)
	return c.JSON(http.StatusOK, house)
}

// Delete handles DELETE /api/houses/:id. Deletion is final; a second
// delete of the same id reports 404.
func (h *HouseHandler) Delete(c echo.Context) error {
	id, err := parseHouseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	// Snapshot the record before it disappears so the event still
	// carries the listing fields.
	house, err := h.Houses.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	if err := h.Houses.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "House not found"})
	}
	h.publish(q.ActionDeleted, house)
	return c.JSON(http.StatusOK, echo.Map{"message": "House deleted successfully"})
}

// publish emits a listing event in the background when events are
// enabled. Publication is best effort; the HTTP response never waits
// on the broker and failures are only logged by the publisher.
func (h *HouseHandler) publish(action string, house model.House) {
	if !h.Cfg.EventsEnabled {
		return
	}
	ev := q.ListingEvent{
		Action:     action,
		HouseID:    house.ID,
		Title:      house.Title,
		Price:      float64(house.Price),
		Address:    house.Address,
		Status:     house.Status,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishListingEvent(ctx, ev)
	}()
}

// parseHouseID extracts the numeric listing id from the URL.
func parseHouseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
