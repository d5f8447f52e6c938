package hotel

import "hoteldesk-backend/internal/model"

// Summary aggregates a guest's nights into paid/unpaid counts and sums.
type Summary struct {
	PaidCount   int     `json:"paid_count"`
	UnpaidCount int     `json:"unpaid_count"`
	SumPaid     float64 `json:"sum_paid"`
	SumUnpaid   float64 `json:"sum_unpaid"`
}

// NightsSummary computes the settlement summary of one guest. Each night
// contributes its own price snapshot; legacy nights without one fall back to
// the guest's current price per night. Pure function, no I/O.
func NightsSummary(guest model.Guest) Summary {
	var s Summary
	for _, n := range guest.Nights {
		price := n.PriceOrDefault(guest.PricePerNight)
		if n.Paid {
			s.PaidCount++
			s.SumPaid += price
		} else {
			s.UnpaidCount++
			s.SumUnpaid += price
		}
	}
	return s
}

// Outstanding is the unpaid balance of the guest.
func (s Summary) Outstanding() float64 {
	return s.SumUnpaid
}
