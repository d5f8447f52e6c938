package hotel

import (
	"context"
	"sort"

	"hoteldesk-backend/internal/model"
)

// Occupancy summarizes the tenant's current house state.
type Occupancy struct {
	TotalRooms    int `json:"total_rooms"`
	OccupiedRooms int `json:"occupied_rooms"`
	GuestsInHouse int `json:"guests_in_house"`
}

// MonthRevenue is revenue recognized and balance outstanding for all stays
// whose check-in falls in one calendar month.
type MonthRevenue struct {
	Month       string  `json:"month"` // YYYY-MM
	Revenue     float64 `json:"revenue"`
	Outstanding float64 `json:"outstanding"`
}

// RoomNights counts total billed nights against one room.
type RoomNights struct {
	RoomNumber int `json:"room_number"`
	Nights     int `json:"nights"`
}

// GuestBalance lists a guest with money still owed.
type GuestBalance struct {
	GuestID     int     `json:"guest_id"`
	Name        string  `json:"name"`
	RoomNumber  int     `json:"room_number"`
	Outstanding float64 `json:"outstanding"`
}

// Report is the tenant-wide read-side aggregation.
type Report struct {
	Occupancy      Occupancy      `json:"occupancy"`
	MonthlyRevenue []MonthRevenue `json:"monthly_revenue"`
	TopRooms       []RoomNights   `json:"top_rooms"`
	Outstanding    []GuestBalance `json:"outstanding"`
}

// Report loads one snapshot of the tenant's collections and aggregates it.
// topN bounds the room ranking.
func (d *Desk) Report(ctx context.Context, tenantID string, topN int) (Report, error) {
	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return Report{}, err
	}
	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(guests, rooms, topN), nil
}

// BuildReport aggregates already-loaded collections. Pure function.
func BuildReport(guests []model.Guest, rooms []model.Room, topN int) Report {
	report := Report{
		MonthlyRevenue: []MonthRevenue{},
		TopRooms:       []RoomNights{},
		Outstanding:    []GuestBalance{},
	}

	report.Occupancy.TotalRooms = len(rooms)
	for _, r := range rooms {
		if r.Occupied {
			report.Occupancy.OccupiedRooms++
		}
	}

	byMonth := make(map[string]*MonthRevenue)
	nightsByRoom := make(map[int]int)

	for _, g := range guests {
		if g.CheckedIn() {
			report.Occupancy.GuestsInHouse++
		}

		s := NightsSummary(g)
		nightsByRoom[g.RoomNumber] += len(g.Nights)

		if month := checkinMonth(g.CheckinDate); month != "" {
			mr, ok := byMonth[month]
			if !ok {
				mr = &MonthRevenue{Month: month}
				byMonth[month] = mr
			}
			mr.Revenue += s.SumPaid
			mr.Outstanding += s.SumUnpaid
		}

		if s.SumUnpaid > 0 {
			report.Outstanding = append(report.Outstanding, GuestBalance{
				GuestID:     g.ID,
				Name:        g.Name,
				RoomNumber:  g.RoomNumber,
				Outstanding: s.SumUnpaid,
			})
		}
	}

	for _, mr := range byMonth {
		report.MonthlyRevenue = append(report.MonthlyRevenue, *mr)
	}
	sort.Slice(report.MonthlyRevenue, func(i, j int) bool {
		return report.MonthlyRevenue[i].Month < report.MonthlyRevenue[j].Month
	})

	for number, nights := range nightsByRoom {
		if nights > 0 {
			report.TopRooms = append(report.TopRooms, RoomNights{RoomNumber: number, Nights: nights})
		}
	}
	sort.Slice(report.TopRooms, func(i, j int) bool {
		if report.TopRooms[i].Nights != report.TopRooms[j].Nights {
			return report.TopRooms[i].Nights > report.TopRooms[j].Nights
		}
		return report.TopRooms[i].RoomNumber < report.TopRooms[j].RoomNumber
	})
	if topN > 0 && len(report.TopRooms) > topN {
		report.TopRooms = report.TopRooms[:topN]
	}

	sort.Slice(report.Outstanding, func(i, j int) bool {
		return report.Outstanding[i].GuestID < report.Outstanding[j].GuestID
	})

	return report
}

// checkinMonth reduces a YYYY-MM-DD date to its YYYY-MM month. Malformed or
// empty dates are skipped rather than failing the whole report.
func checkinMonth(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
