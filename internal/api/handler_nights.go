package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/mw"
)

type addNightRequest struct {
	Paid bool `json:"paid"`
}

type setNightPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// AddNight handles POST /api/guests/:id/nights.
func (h *Handler) AddNight(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	var req addNightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	guest, err := h.desk.AddNight(c.Request.Context(), mw.TenantID(c), id, req.Paid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGuestResponse(guest))
}

// SetNightPaid handles PATCH /api/guests/:id/nights/:number.
func (h *Handler) SetNightPaid(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid night number"})
		return
	}

	var req setNightPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Paid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	guest, err := h.desk.SetNightPaid(c.Request.Context(), mw.TenantID(c), id, number, *req.Paid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGuestResponse(guest))
}
