package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/auth"
	"hoteldesk-backend/internal/hotel"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	desk *hotel.Desk
	auth *auth.Service
}

// NewHandler creates a new API handler.
func NewHandler(desk *hotel.Desk, authSvc *auth.Service) *Handler {
	return &Handler{desk: desk, auth: authSvc}
}

// respondError maps domain errors onto HTTP statuses. Unknown errors become
// an opaque 500 so storage details never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hotel.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, hotel.ErrGuestNotFound),
		errors.Is(err, hotel.ErrRoomNotFound),
		errors.Is(err, hotel.ErrNightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, hotel.ErrDuplicateRoom),
		errors.Is(err, hotel.ErrRoomOccupied),
		errors.Is(err, hotel.ErrGuestCheckedIn),
		errors.Is(err, hotel.ErrGuestCheckedOut):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
