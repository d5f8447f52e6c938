package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestUnmarshalLegacyNight(t *testing.T) {
	// Records written before nights carried a price snapshot.
	raw := `{
		"id": 1,
		"name": "Alice",
		"room_number": 5,
		"room_category": "Single",
		"price_per_night": 80,
		"nights": [{"number": 1, "paid": true}, {"number": 2, "paid": false, "price": 70}],
		"checkin_date": "2026-08-01",
		"checkout_date": null,
		"status": "checked_in"
	}`

	var guest Guest
	require.NoError(t, json.Unmarshal([]byte(raw), &guest))

	require.Len(t, guest.Nights, 2)
	assert.Nil(t, guest.Nights[0].Price)
	assert.InDelta(t, 80.0, guest.Nights[0].PriceOrDefault(guest.PricePerNight), 1e-9)
	require.NotNil(t, guest.Nights[1].Price)
	assert.InDelta(t, 70.0, *guest.Nights[1].Price, 1e-9)

	assert.True(t, guest.CheckedIn())
	assert.Nil(t, guest.CheckoutDate)
}

func TestNightMarshalOmitsMissingPrice(t *testing.T) {
	raw, err := json.Marshal(Night{Number: 1, Paid: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":1,"paid":true}`, string(raw))
}

func TestNextNightNumber(t *testing.T) {
	var guest Guest
	assert.Equal(t, 1, guest.NextNightNumber())

	guest.Nights = []Night{{Number: 1}, {Number: 2}, {Number: 7}}
	assert.Equal(t, 8, guest.NextNightNumber())
}

func TestRoomCategoryValid(t *testing.T) {
	for _, c := range []RoomCategory{CategorySingle, CategoryDouble, CategoryFamily, CategorySuite, CategoryOther} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, RoomCategory("Penthouse").Valid())
	assert.False(t, RoomCategory("").Valid())
}
