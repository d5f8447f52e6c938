package model

// RoomCategory is the closed set of room types a tenant can book guests into.
type RoomCategory string

const (
	CategorySingle RoomCategory = "Single"
	CategoryDouble RoomCategory = "Double"
	CategoryFamily RoomCategory = "Family"
	CategorySuite  RoomCategory = "Suite"
	CategoryOther  RoomCategory = "Other"
)

// Valid reports whether c is one of the known categories.
func (c RoomCategory) Valid() bool {
	switch c {
	case CategorySingle, CategoryDouble, CategoryFamily, CategorySuite, CategoryOther:
		return true
	}
	return false
}

// Room is one bookable room of a tenant. Occupied mirrors whether a
// checked-in guest currently references the room number; the domain layer
// keeps the two in sync.
type Room struct {
	Number   int          `json:"number"`
	Category RoomCategory `json:"category"`
	Occupied bool         `json:"occupied"`
}
