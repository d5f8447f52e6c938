package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/model"
	"hoteldesk-backend/internal/mw"
)

type guestRequest struct {
	Name          string             `json:"name" binding:"required"`
	RoomNumber    int                `json:"room_number" binding:"required"`
	RoomCategory  model.RoomCategory `json:"room_category" binding:"required"`
	PricePerNight float64            `json:"price_per_night"`
}

// guestResponse pairs a guest with its settlement summary, which is how the
// front desk always displays a stay.
type guestResponse struct {
	model.Guest
	Summary hotel.Summary `json:"summary"`
}

func toGuestResponse(g model.Guest) guestResponse {
	return guestResponse{Guest: g, Summary: hotel.NightsSummary(g)}
}

func guestID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest id"})
		return 0, false
	}
	return id, true
}

// ListGuests handles GET /api/guests. Checked-out stays are included only
// with ?all=true.
func (h *Handler) ListGuests(c *gin.Context) {
	includeCheckedOut := c.Query("all") == "true"
	guests, err := h.desk.ListGuests(c.Request.Context(), mw.TenantID(c), includeCheckedOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// SearchGuests handles GET /api/guests/search?q=.
func (h *Handler) SearchGuests(c *gin.Context) {
	guests, err := h.desk.SearchGuestsByName(c.Request.Context(), mw.TenantID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// CreateGuest handles POST /api/guests (check-in).
func (h *Handler) CreateGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	guest, err := h.desk.AddGuest(c.Request.Context(), mw.TenantID(c), req.Name, req.RoomNumber, req.RoomCategory, req.PricePerNight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGuestResponse(guest))
}

// GetGuest handles GET /api/guests/:id.
func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	guest, err := h.desk.GetGuest(c.Request.Context(), mw.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGuestResponse(guest))
}

// UpdateGuest handles PATCH /api/guests/:id.
func (h *Handler) UpdateGuest(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	guest, err := h.desk.UpdateGuestDetails(c.Request.Context(), mw.TenantID(c), id, req.Name, req.RoomNumber, req.RoomCategory, req.PricePerNight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGuestResponse(guest))
}

// CheckoutGuest handles POST /api/guests/:id/checkout.
func (h *Handler) CheckoutGuest(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	guest, err := h.desk.CheckoutGuest(c.Request.Context(), mw.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGuestResponse(guest))
}

// DeleteGuest handles DELETE /api/guests/:id.
func (h *Handler) DeleteGuest(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	if err := h.desk.DeleteGuest(c.Request.Context(), mw.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
