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

// DonationHandler exposes donor registration and donation intake.
// Routes are gated by JWT and role middleware; the service re-checks
// the session role so the rule holds even without the HTTP layer.
type DonationHandler struct {
	App *service.App
}

func NewDonationHandler(app *service.App) *DonationHandler {
	return &DonationHandler{App: app}
}

type donorReq struct {
	DonorID     string `json:"donor_id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type intakeItem struct {
	ItemID      string `json:"item_id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type donationReq struct {
	DonorID string       `json:"donor_id"`
	Items   []intakeItem `json:"items"`
}

// CreateDonor handles POST /v1/donors.
func (h *DonationHandler) CreateDonor(c echo.Context) error {
	var req donorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.DonorID = strings.TrimSpace(req.DonorID)
	if req.DonorID == "" || strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "donor_id/name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	err := h.App.RegisterDonor(ctx, sess, model.Donor{
		DonorID:     req.DonorID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"donor_id": req.DonorID})
}

// Accept handles POST /v1/donations: one receipt plus the batch of
// items intaken in that event.
func (h *DonationHandler) Accept(c echo.Context) error {
	var req donationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.DonorID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "donor_id required"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "items required"})
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.Name) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "every item needs a name"})
		}
	}

	items := make([]service.ItemIntake, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemIntake{
			ItemID:      strings.TrimSpace(it.ItemID),
			CategoryID:  it.CategoryID,
			Name:        it.Name,
			Description: it.Description,
			Location:    it.Location,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := currentSession(c, h.App)
	donationID, err := h.App.AcceptDonation(ctx, sess, req.DonorID, items)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"donation_id": donationID})
}

// DonorDonations handles GET /v1/donors/:id/donations.
func (h *DonationHandler) DonorDonations(c echo.Context) error {
	donorID := c.Param("id")
	if donorID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "donor id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.App.DonorDonations(ctx, donorID)
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]echo.Map, 0, len(list))
	for _, d := range list {
		out = append(out, echo.Map{
			"donation_id":    d.DonationID,
			"staff_username": d.StaffUsername,
			"donation_date":  d.DonationDate,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"donor_id": donorID, "donations": out})
}
