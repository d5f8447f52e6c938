package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk-backend/internal/model"
)

func TestBuildReport(t *testing.T) {
	rooms := []model.Room{
		{Number: 1, Category: model.CategorySingle, Occupied: true},
		{Number: 2, Category: model.CategoryDouble, Occupied: false},
		{Number: 3, Category: model.CategorySuite, Occupied: true},
	}
	guests := []model.Guest{
		{
			ID: 1, Name: "Alice", RoomNumber: 1, PricePerNight: 100,
			CheckinDate: "2026-07-03", Status: model.StatusCheckedIn,
			Nights: []model.Night{
				{Number: 1, Paid: true, Price: price(100)},
				{Number: 2, Paid: false, Price: price(100)},
			},
		},
		{
			ID: 2, Name: "Bob", RoomNumber: 3, PricePerNight: 200,
			CheckinDate: "2026-08-15", Status: model.StatusCheckedIn,
			Nights: []model.Night{
				{Number: 1, Paid: true, Price: price(200)},
				{Number: 2, Paid: true, Price: price(200)},
				{Number: 3, Paid: true, Price: price(200)},
			},
		},
		{
			ID: 3, Name: "Carol", RoomNumber: 2, PricePerNight: 50,
			CheckinDate: "2026-07-20", Status: model.StatusCheckedOut,
			Nights: []model.Night{
				{Number: 1, Paid: false, Price: price(50)},
			},
		},
	}

	report := BuildReport(guests, rooms, 2)

	assert.Equal(t, Occupancy{TotalRooms: 3, OccupiedRooms: 2, GuestsInHouse: 2}, report.Occupancy)

	require.Len(t, report.MonthlyRevenue, 2)
	assert.Equal(t, "2026-07", report.MonthlyRevenue[0].Month)
	assert.InDelta(t, 100.0, report.MonthlyRevenue[0].Revenue, 1e-9)
	assert.InDelta(t, 150.0, report.MonthlyRevenue[0].Outstanding, 1e-9)
	assert.Equal(t, "2026-08", report.MonthlyRevenue[1].Month)
	assert.InDelta(t, 600.0, report.MonthlyRevenue[1].Revenue, 1e-9)
	assert.InDelta(t, 0.0, report.MonthlyRevenue[1].Outstanding, 1e-9)

	require.Len(t, report.TopRooms, 2)
	assert.Equal(t, RoomNights{RoomNumber: 3, Nights: 3}, report.TopRooms[0])
	assert.Equal(t, RoomNights{RoomNumber: 1, Nights: 2}, report.TopRooms[1])

	require.Len(t, report.Outstanding, 2)
	assert.Equal(t, 1, report.Outstanding[0].GuestID)
	assert.InDelta(t, 100.0, report.Outstanding[0].Outstanding, 1e-9)
	assert.Equal(t, 3, report.Outstanding[1].GuestID)
	assert.InDelta(t, 50.0, report.Outstanding[1].Outstanding, 1e-9)
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, nil, 5)

	assert.Equal(t, Occupancy{}, report.Occupancy)
	assert.Empty(t, report.MonthlyRevenue)
	assert.Empty(t, report.TopRooms)
	assert.Empty(t, report.Outstanding)
}

func TestBuildReportSkipsMalformedCheckinDates(t *testing.T) {
	guests := []model.Guest{
		{
			ID: 1, Name: "Alice", RoomNumber: 1, PricePerNight: 100,
			CheckinDate: "bad", Status: model.StatusCheckedIn,
			Nights: []model.Night{{Number: 1, Paid: true, Price: price(100)}},
		},
	}

	report := BuildReport(guests, nil, 5)
	assert.Empty(t, report.MonthlyRevenue)
	// The nights still count toward the room ranking.
	require.Len(t, report.TopRooms, 1)
	assert.Equal(t, 1, report.TopRooms[0].Nights)
}
