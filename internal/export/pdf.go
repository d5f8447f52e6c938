package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/model"
)

// ReceiptPDF renders a guest receipt as a PDF document.
func ReceiptPDF(guest model.Guest, summary hotel.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Receipt", "", 1, "L", false, 0, "")

	checkout := "-"
	if guest.CheckoutDate != nil {
		checkout = *guest.CheckoutDate
	}

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Guest: %s", guest.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Room: %d (%s)", guest.RoomNumber, guest.RoomCategory), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Price per night: %.2f", guest.PricePerNight), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Check-in: %s", guest.CheckinDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Checkout: %s", checkout), "", 1, "L", false, 0, "")

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Nights", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(30, 8, "Night", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Paid", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, n := range guest.Nights {
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", n.Number), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, paidLabel(n.Paid), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", n.PriceOrDefault(guest.PricePerNight)), "", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Paid nights: %d (%.2f)", summary.PaidCount, summary.SumPaid), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Unpaid nights: %d (%.2f)", summary.UnpaidCount, summary.SumUnpaid), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
