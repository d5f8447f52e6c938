package model

// GuestStatus tracks where a guest is in the check-in/checkout lifecycle.
type GuestStatus string

const (
	StatusCheckedIn  GuestStatus = "checked_in"
	StatusCheckedOut GuestStatus = "checked_out"
)

// DateLayout is the wire format for check-in and checkout dates.
const DateLayout = "2006-01-02"

// Night is one billable unit of a stay. Price is the guest's price per night
// at the moment the night was added; records persisted before the field
// existed carry nil and fall back to the guest's current price at read time.
type Night struct {
	Number int      `json:"number"`
	Paid   bool     `json:"paid"`
	Price  *float64 `json:"price,omitempty"`
}

// PriceOrDefault returns the stored price snapshot, or fallback for legacy
// nights that were persisted without one.
func (n Night) PriceOrDefault(fallback float64) float64 {
	if n.Price != nil {
		return *n.Price
	}
	return fallback
}

// Guest is one stay of one guest, scoped to a tenant. RoomCategory is a
// snapshot taken at check-in or edit time and may diverge from the room's
// current category.
type Guest struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	RoomNumber    int          `json:"room_number"`
	RoomCategory  RoomCategory `json:"room_category"`
	PricePerNight float64      `json:"price_per_night"`
	Nights        []Night      `json:"nights"`
	CheckinDate   string       `json:"checkin_date"`
	CheckoutDate  *string      `json:"checkout_date"`
	Status        GuestStatus  `json:"status"`
}

// CheckedIn reports whether the guest still occupies a room.
func (g Guest) CheckedIn() bool {
	return g.Status == StatusCheckedIn
}

// NextNightNumber returns the number the next appended night must carry.
func (g Guest) NextNightNumber() int {
	next := 1
	for _, n := range g.Nights {
		if n.Number >= next {
			next = n.Number + 1
		}
	}
	return next
}
