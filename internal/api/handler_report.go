package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/mw"
)

const defaultTopRooms = 5

// GetReport handles GET /api/report?top=N.
func (h *Handler) GetReport(c *gin.Context) {
	topN := defaultTopRooms
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid top parameter"})
			return
		}
		topN = n
	}

	report, err := h.desk.Report(c.Request.Context(), mw.TenantID(c), topN)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
