// Package export renders a guest and its settlement summary into receipt
// documents. Pure projections of domain state; no business logic lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/model"
)

// WriteReceiptCSV writes a guest receipt as CSV: a header block with the
// stay details, one row per night, and the paid/unpaid totals.
func WriteReceiptCSV(w io.Writer, guest model.Guest, summary hotel.Summary) error {
	cw := csv.NewWriter(w)

	checkout := "-"
	if guest.CheckoutDate != nil {
		checkout = *guest.CheckoutDate
	}

	head := [][]string{
		{"guest", guest.Name},
		{"room", fmt.Sprintf("%d (%s)", guest.RoomNumber, guest.RoomCategory)},
		{"price_per_night", formatAmount(guest.PricePerNight)},
		{"checkin", guest.CheckinDate},
		{"checkout", checkout},
		{},
		{"night", "paid", "price"},
	}
	for _, row := range head {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write receipt header: %w", err)
		}
	}

	for _, n := range guest.Nights {
		row := []string{
			fmt.Sprintf("%d", n.Number),
			paidLabel(n.Paid),
			formatAmount(n.PriceOrDefault(guest.PricePerNight)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write night row: %w", err)
		}
	}

	totals := [][]string{
		{},
		{"paid_nights", fmt.Sprintf("%d", summary.PaidCount), formatAmount(summary.SumPaid)},
		{"unpaid_nights", fmt.Sprintf("%d", summary.UnpaidCount), formatAmount(summary.SumUnpaid)},
	}
	for _, row := range totals {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func paidLabel(paid bool) string {
	if paid {
		return "yes"
	}
	return "no"
}
