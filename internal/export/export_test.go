package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/model"
)

func price(v float64) *float64 { return &v }

func receiptGuest() model.Guest {
	checkout := "2026-08-24"
	return model.Guest{
		ID: 7, Name: "Alice Miller", RoomNumber: 12, RoomCategory: model.CategoryDouble,
		PricePerNight: 90, CheckinDate: "2026-08-21", CheckoutDate: &checkout,
		Status: model.StatusCheckedOut,
		Nights: []model.Night{
			{Number: 1, Paid: true, Price: price(90)},
			{Number: 2, Paid: true, Price: price(100)},
			{Number: 3, Paid: false}, // legacy night, falls back to the guest price
		},
	}
}

func TestWriteReceiptCSV(t *testing.T) {
	guest := receiptGuest()
	summary := hotel.NightsSummary(guest)

	var buf bytes.Buffer
	require.NoError(t, WriteReceiptCSV(&buf, guest, summary))
	out := buf.String()

	assert.Contains(t, out, "guest,Alice Miller")
	assert.Contains(t, out, "room,12 (Double)")
	assert.Contains(t, out, "checkin,2026-08-21")
	assert.Contains(t, out, "checkout,2026-08-24")
	assert.Contains(t, out, "1,yes,90.00")
	assert.Contains(t, out, "2,yes,100.00")
	assert.Contains(t, out, "3,no,90.00")
	assert.Contains(t, out, "paid_nights,2,190.00")
	assert.Contains(t, out, "unpaid_nights,1,90.00")

	// One line per night plus header block and totals.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 13)
}

func TestWriteReceiptCSVOpenStay(t *testing.T) {
	guest := receiptGuest()
	guest.CheckoutDate = nil
	guest.Status = model.StatusCheckedIn

	var buf bytes.Buffer
	require.NoError(t, WriteReceiptCSV(&buf, guest, hotel.NightsSummary(guest)))
	assert.Contains(t, buf.String(), "checkout,-")
}

func TestReceiptPDF(t *testing.T) {
	guest := receiptGuest()

	raw, err := ReceiptPDF(guest, hotel.NightsSummary(guest))
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "output should start with the PDF magic")
	assert.True(t, bytes.Contains(raw, []byte("%%EOF")), "output should be a complete PDF document")
}
