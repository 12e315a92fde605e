package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/service"
)

// ItemHandler exposes inventory lookups and the category taxonomy.
type ItemHandler struct {
	App *service.App
}

func NewItemHandler(app *service.App) *ItemHandler {
	return &ItemHandler{App: app}
}

// Locations handles GET /v1/items/:id/locations. Unknown items return
// an empty list with 200, matching the lookup contract.
func (h *ItemHandler) Locations(c echo.Context) error {
	itemID := c.Param("id")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	locs, err := h.App.FindItemLocations(ctx, itemID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item_id": itemID, "locations": locs})
}

// Available handles GET /v1/items: the inventory currently open for
// ordering.
func (h *ItemHandler) Available(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.App.AvailableItems(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]echo.Map, 0, len(items))
	for _, it := range items {
		entry := echo.Map{
			"item_id":     it.ItemID,
			"name":        it.Name,
			"description": it.Description,
			"status":      string(it.Status),
			"location":    it.Location,
		}
		if it.CategoryID != nil {
			entry["category_id"] = *it.CategoryID
		}
		out = append(out, entry)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Categories handles GET /v1/categories.
func (h *ItemHandler) Categories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.App.Categories(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]echo.Map, 0, len(cats))
	for _, cat := range cats {
		out = append(out, echo.Map{
			"category_id": cat.CategoryID,
			"name":        cat.Name,
			"subcategory": cat.Subcategory,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

type categoryReq struct {
	Name        string `json:"name"`
	Subcategory string `json:"subcategory,omitempty"`
}

// CreateCategory handles POST /v1/categories (staff only).
func (h *ItemHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	cat := model.Category{Name: req.Name, Subcategory: req.Subcategory}
	if err := h.App.AddCategory(ctx, sess, &cat); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"category_id": cat.CategoryID, "name": cat.Name})
}
