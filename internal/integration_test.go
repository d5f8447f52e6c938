package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hoteldesk-backend/internal/db"
	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/model"
	"hoteldesk-backend/internal/store"
)

// TestFullStayLifecycle drives one stay through the real store and the real
// domain layer, end to end: check in, bill nights, settle, report, check out
// and reuse the room.
func TestFullStayLifecycle(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	require.NoError(t, db.Migrate(gormDB))

	desk := hotel.NewDesk(store.NewGormStore(gormDB))
	ctx := context.Background()
	const tenant = "hotel-1"

	// Check in. The room does not exist yet and is created on the fly.
	guest, err := desk.AddGuest(ctx, tenant, "Alice Miller", 12, model.CategoryDouble, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, guest.ID)
	assert.Equal(t, model.StatusCheckedIn, guest.Status)

	room, err := desk.GetRoom(ctx, tenant, 12)
	require.NoError(t, err)
	assert.True(t, room.Occupied)

	// The room cannot be double booked or removed while the stay is open.
	_, err = desk.AddGuest(ctx, tenant, "Bob", 12, model.CategoryDouble, 90)
	assert.ErrorIs(t, err, hotel.ErrRoomOccupied)
	err = desk.DeleteRoom(ctx, tenant, 12)
	assert.ErrorIs(t, err, hotel.ErrRoomOccupied)

	// Two nights at 90, then a price change and a third night at 110. The
	// first two snapshots must keep the old price.
	_, err = desk.AddNight(ctx, tenant, guest.ID, true)
	require.NoError(t, err)
	_, err = desk.AddNight(ctx, tenant, guest.ID, false)
	require.NoError(t, err)
	_, err = desk.UpdateGuestDetails(ctx, tenant, guest.ID, "Alice Miller", 12, model.CategoryDouble, 110)
	require.NoError(t, err)
	guest, err = desk.AddNight(ctx, tenant, guest.ID, false)
	require.NoError(t, err)

	summary := hotel.NightsSummary(guest)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 2, summary.UnpaidCount)
	assert.InDelta(t, 90.0, summary.SumPaid, 1e-9)
	assert.InDelta(t, 200.0, summary.SumUnpaid, 1e-9)

	// Settle night two, leaving only the 110 night outstanding.
	guest, err = desk.SetNightPaid(ctx, tenant, guest.ID, 2, true)
	require.NoError(t, err)
	summary = hotel.NightsSummary(guest)
	assert.InDelta(t, 110.0, summary.Outstanding(), 1e-9)

	report, err := desk.Report(ctx, tenant, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Occupancy.GuestsInHouse)
	require.Len(t, report.Outstanding, 1)
	assert.InDelta(t, 110.0, report.Outstanding[0].Outstanding, 1e-9)
	require.Len(t, report.TopRooms, 1)
	assert.Equal(t, hotel.RoomNights{RoomNumber: 12, Nights: 3}, report.TopRooms[0])

	// Checkout releases the room and survives a fresh load from the database.
	guest, err = desk.CheckoutGuest(ctx, tenant, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedOut, guest.Status)
	require.NotNil(t, guest.CheckoutDate)

	reloaded := hotel.NewDesk(store.NewGormStore(gormDB))
	room, err = reloaded.GetRoom(ctx, tenant, 12)
	require.NoError(t, err)
	assert.False(t, room.Occupied)

	// The freed room accepts the next guest, with a fresh id.
	next, err := reloaded.AddGuest(ctx, tenant, "Bob", 12, model.CategoryDouble, 95)
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID)

	// Other tenants see none of this.
	other, err := reloaded.ListGuests(ctx, "hotel-2", true)
	require.NoError(t, err)
	assert.Empty(t, other)
}
