package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/export"
	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/mw"
)

// ReceiptCSV handles GET /api/guests/:id/receipt.csv.
func (h *Handler) ReceiptCSV(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	guest, err := h.desk.GetGuest(c.Request.Context(), mw.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReceiptCSV(&buf, guest, hotel.NightsSummary(guest)); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.csv", guest.ID))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ReceiptPDF handles GET /api/guests/:id/receipt.pdf.
func (h *Handler) ReceiptPDF(c *gin.Context) {
	id, ok := guestID(c)
	if !ok {
		return
	}

	guest, err := h.desk.GetGuest(c.Request.Context(), mw.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := export.ReceiptPDF(guest, hotel.NightsSummary(guest))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", guest.ID))
	c.Data(http.StatusOK, "application/pdf", doc)
}
