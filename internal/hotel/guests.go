package hotel

import (
	"context"
	"fmt"
	"strings"

	"hoteldesk-backend/internal/model"
)

// AddGuest checks a guest into a room. An unknown room number is created on
// the fly with the supplied category; an occupied room rejects the check-in.
// Guest ids are assigned monotonically per tenant.
func (d *Desk) AddGuest(ctx context.Context, tenantID, name string, roomNumber int, category model.RoomCategory, pricePerNight float64) (model.Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Guest{}, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if roomNumber <= 0 {
		return model.Guest{}, fmt.Errorf("%w: room number must be positive", ErrValidation)
	}
	if pricePerNight < 0 {
		return model.Guest{}, fmt.Errorf("%w: price per night must not be negative", ErrValidation)
	}
	if !category.Valid() {
		return model.Guest{}, fmt.Errorf("%w: unknown room category %q", ErrValidation, category)
	}

	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}

	room := findRoom(rooms, roomNumber)
	if room == nil {
		rooms = append(rooms, model.Room{Number: roomNumber, Category: category, Occupied: false})
		room = &rooms[len(rooms)-1]
	}
	if room.Occupied {
		return model.Guest{}, fmt.Errorf("%w: room %d", ErrRoomOccupied, roomNumber)
	}

	guest := model.Guest{
		ID:            nextGuestID(guests),
		Name:          name,
		RoomNumber:    roomNumber,
		RoomCategory:  category,
		PricePerNight: pricePerNight,
		Nights:        []model.Night{},
		CheckinDate:   d.today(),
		CheckoutDate:  nil,
		Status:        model.StatusCheckedIn,
	}
	guests = append(guests, guest)
	room.Occupied = true

	if err := d.store.SaveGuests(ctx, tenantID, guests); err != nil {
		return model.Guest{}, err
	}
	if err := d.store.SaveRooms(ctx, tenantID, rooms); err != nil {
		return model.Guest{}, err
	}
	return guest, nil
}

func nextGuestID(guests []model.Guest) int {
	next := 1
	for _, g := range guests {
		if g.ID >= next {
			next = g.ID + 1
		}
	}
	return next
}

// GetGuest returns the guest with the given id.
func (d *Desk) GetGuest(ctx context.Context, tenantID string, guestID int) (model.Guest, error) {
	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	guest := findGuest(guests, guestID)
	if guest == nil {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}
	return *guest, nil
}

// AddNight appends one billable night to a guest. The night snapshots the
// guest's current price per night so later price edits leave it untouched.
func (d *Desk) AddNight(ctx context.Context, tenantID string, guestID int, paid bool) (model.Guest, error) {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	guest := findGuest(guests, guestID)
	if guest == nil {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}

	price := guest.PricePerNight
	guest.Nights = append(guest.Nights, model.Night{
		Number: guest.NextNightNumber(),
		Paid:   paid,
		Price:  &price,
	})

	if err := d.store.SaveGuests(ctx, tenantID, guests); err != nil {
		return model.Guest{}, err
	}
	return *guest, nil
}

// SetNightPaid flips the payment flag of one night.
func (d *Desk) SetNightPaid(ctx context.Context, tenantID string, guestID, nightNumber int, paid bool) (model.Guest, error) {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	guest := findGuest(guests, guestID)
	if guest == nil {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}

	found := false
	for i := range guest.Nights {
		if guest.Nights[i].Number == nightNumber {
			guest.Nights[i].Paid = paid
			found = true
			break
		}
	}
	if !found {
		return model.Guest{}, fmt.Errorf("%w: night %d of guest %d", ErrNightNotFound, nightNumber, guestID)
	}

	if err := d.store.SaveGuests(ctx, tenantID, guests); err != nil {
		return model.Guest{}, err
	}
	return *guest, nil
}

// CheckoutGuest ends a stay: the guest becomes checked_out with today's date
// and the occupied room is released.
func (d *Desk) CheckoutGuest(ctx context.Context, tenantID string, guestID int) (model.Guest, error) {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	guest := findGuest(guests, guestID)
	if guest == nil {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}
	if !guest.CheckedIn() {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestCheckedOut, guestID)
	}

	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}

	today := d.today()
	guest.Status = model.StatusCheckedOut
	guest.CheckoutDate = &today
	if room := findRoom(rooms, guest.RoomNumber); room != nil {
		room.Occupied = false
	}

	if err := d.store.SaveGuests(ctx, tenantID, guests); err != nil {
		return model.Guest{}, err
	}
	if err := d.store.SaveRooms(ctx, tenantID, rooms); err != nil {
		return model.Guest{}, err
	}
	return *guest, nil
}

// DeleteGuest removes a checked-out guest. A guest that is still checked in
// must be checked out first so the room release stays on one code path.
func (d *Desk) DeleteGuest(ctx context.Context, tenantID string, guestID int) error {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return err
	}
	guest := findGuest(guests, guestID)
	if guest == nil {
		return fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}
	if guest.CheckedIn() {
		return fmt.Errorf("%w: guest %d must be checked out before deletion", ErrGuestCheckedIn, guestID)
	}

	kept := guests[:0]
	for _, g := range guests {
		if g.ID != guestID {
			kept = append(kept, g)
		}
	}
	return d.store.SaveGuests(ctx, tenantID, kept)
}

// UpdateGuestDetails edits name, room, category and price of a guest. Moving
// a checked-in guest releases the old room and occupies the new one, which
// is created on the fly when unknown. The new price only applies to nights
// added afterwards; existing night snapshots keep their value.
func (d *Desk) UpdateGuestDetails(ctx context.Context, tenantID string, guestID int, newName string, newRoomNumber int, newCategory model.RoomCategory, newPrice float64) (model.Guest, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return model.Guest{}, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if newRoomNumber <= 0 {
		return model.Guest{}, fmt.Errorf("%w: room number must be positive", ErrValidation)
	}
	if newPrice < 0 {
		return model.Guest{}, fmt.Errorf("%w: price per night must not be negative", ErrValidation)
	}
	if !newCategory.Valid() {
		return model.Guest{}, fmt.Errorf("%w: unknown room category %q", ErrValidation, newCategory)
	}

	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}
	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return model.Guest{}, err
	}

	guest := findGuest(guests, guestID)
	if guest == nil {
		return model.Guest{}, fmt.Errorf("%w: guest %d", ErrGuestNotFound, guestID)
	}

	if newRoomNumber != guest.RoomNumber {
		newRoom := findRoom(rooms, newRoomNumber)
		if newRoom == nil {
			rooms = append(rooms, model.Room{Number: newRoomNumber, Category: newCategory, Occupied: false})
			newRoom = &rooms[len(rooms)-1]
		}
		// Occupancy only moves with a checked-in guest; editing a past stay
		// must not mark rooms occupied.
		if guest.CheckedIn() {
			if newRoom.Occupied {
				return model.Guest{}, fmt.Errorf("%w: room %d", ErrRoomOccupied, newRoomNumber)
			}
			if oldRoom := findRoom(rooms, guest.RoomNumber); oldRoom != nil {
				oldRoom.Occupied = false
			}
			newRoom.Occupied = true
		}
		guest.RoomNumber = newRoomNumber
	}

	guest.Name = newName
	guest.RoomCategory = newCategory
	guest.PricePerNight = newPrice

	if err := d.store.SaveGuests(ctx, tenantID, guests); err != nil {
		return model.Guest{}, err
	}
	if err := d.store.SaveRooms(ctx, tenantID, rooms); err != nil {
		return model.Guest{}, err
	}
	return *guest, nil
}

// SearchGuestsByName returns all guests whose name contains the query,
// case-insensitively, regardless of status.
func (d *Desk) SearchGuestsByName(ctx context.Context, tenantID, query string) ([]model.Guest, error) {
	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := []model.Guest{}
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.Name), q) {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

// ListGuests returns the tenant's guests, restricted to checked-in stays
// unless includeCheckedOut is set.
func (d *Desk) ListGuests(ctx context.Context, tenantID string, includeCheckedOut bool) ([]model.Guest, error) {
	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if includeCheckedOut {
		return guests, nil
	}

	current := []model.Guest{}
	for _, g := range guests {
		if g.CheckedIn() {
			current = append(current, g)
		}
	}
	return current, nil
}
