package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/model"
	"hoteldesk-backend/internal/mw"
)

type createRoomRequest struct {
	Number   int                `json:"number" binding:"required"`
	Category model.RoomCategory `json:"category" binding:"required"`
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.desk.ListRooms(c.Request.Context(), mw.TenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	room, err := h.desk.AddRoom(c.Request.Context(), mw.TenantID(c), req.Number, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// DeleteRoom handles DELETE /api/rooms/:number.
func (h *Handler) DeleteRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room number"})
		return
	}

	if err := h.desk.DeleteRoom(c.Request.Context(), mw.TenantID(c), number); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FreeRoom handles POST /api/rooms/:number/free.
func (h *Handler) FreeRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room number"})
		return
	}

	if err := h.desk.FreeRoom(c.Request.Context(), mw.TenantID(c), number); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
