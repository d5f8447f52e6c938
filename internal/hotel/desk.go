package hotel

import (
	"context"
	"fmt"
	"time"

	"hoteldesk-backend/internal/model"
	"hoteldesk-backend/internal/store"
)

// Desk is the front-desk domain layer. Every operation is scoped to one
// tenant, loads the tenant's collections through the store, mutates them in
// memory and writes them back in full. Mutations serialize per tenant.
type Desk struct {
	store store.Store
	locks *tenantLocks
	now   func() time.Time
}

// NewDesk creates a desk on top of a persistence gateway.
func NewDesk(s store.Store) *Desk {
	return &Desk{
		store: s,
		locks: newTenantLocks(),
		now:   time.Now,
	}
}

func (d *Desk) today() string {
	return d.now().Format(model.DateLayout)
}

func findRoom(rooms []model.Room, number int) *model.Room {
	for i := range rooms {
		if rooms[i].Number == number {
			return &rooms[i]
		}
	}
	return nil
}

func findGuest(guests []model.Guest, id int) *model.Guest {
	for i := range guests {
		if guests[i].ID == id {
			return &guests[i]
		}
	}
	return nil
}

// roomHasCheckedInGuest reports whether any checked-in guest references the
// room number. Used to police freeing and deleting rooms.
func roomHasCheckedInGuest(guests []model.Guest, number int) bool {
	for _, g := range guests {
		if g.CheckedIn() && g.RoomNumber == number {
			return true
		}
	}
	return false
}

// AddRoom creates a room for the tenant. The room starts unoccupied.
func (d *Desk) AddRoom(ctx context.Context, tenantID string, number int, category model.RoomCategory) (model.Room, error) {
	if number <= 0 {
		return model.Room{}, fmt.Errorf("%w: room number must be positive", ErrValidation)
	}
	if !category.Valid() {
		return model.Room{}, fmt.Errorf("%w: unknown room category %q", ErrValidation, category)
	}

	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return model.Room{}, err
	}

	if findRoom(rooms, number) != nil {
		return model.Room{}, fmt.Errorf("%w: room %d", ErrDuplicateRoom, number)
	}

	room := model.Room{Number: number, Category: category, Occupied: false}
	rooms = append(rooms, room)
	if err := d.store.SaveRooms(ctx, tenantID, rooms); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// GetRoom returns the room with the given number.
func (d *Desk) GetRoom(ctx context.Context, tenantID string, number int) (model.Room, error) {
	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return model.Room{}, err
	}
	room := findRoom(rooms, number)
	if room == nil {
		return model.Room{}, fmt.Errorf("%w: room %d", ErrRoomNotFound, number)
	}
	return *room, nil
}

// ListRooms returns the tenant's full room collection.
func (d *Desk) ListRooms(ctx context.Context, tenantID string) ([]model.Room, error) {
	return d.store.LoadRooms(ctx, tenantID)
}

// SetRoomOccupied flips the occupancy flag of a room directly. Guest
// lifecycle operations keep the flag in sync on their own; this exists for
// repairing state that drifted.
func (d *Desk) SetRoomOccupied(ctx context.Context, tenantID string, number int, occupied bool) error {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return err
	}

	room := findRoom(rooms, number)
	if room == nil {
		return fmt.Errorf("%w: room %d", ErrRoomNotFound, number)
	}
	room.Occupied = occupied
	return d.store.SaveRooms(ctx, tenantID, rooms)
}

// FreeRoom marks a room unoccupied. A room still referenced by a checked-in
// guest cannot be freed; check the guest out instead.
func (d *Desk) FreeRoom(ctx context.Context, tenantID string, number int) error {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return err
	}
	room := findRoom(rooms, number)
	if room == nil {
		return fmt.Errorf("%w: room %d", ErrRoomNotFound, number)
	}

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return err
	}
	if roomHasCheckedInGuest(guests, number) {
		return fmt.Errorf("%w: room %d has a checked-in guest", ErrRoomOccupied, number)
	}

	room.Occupied = false
	return d.store.SaveRooms(ctx, tenantID, rooms)
}

// DeleteRoom removes a room. A room still referenced by a checked-in guest
// cannot be deleted.
func (d *Desk) DeleteRoom(ctx context.Context, tenantID string, number int) error {
	lock := d.locks.Get(tenantID)
	lock.Lock()
	defer lock.Unlock()

	rooms, err := d.store.LoadRooms(ctx, tenantID)
	if err != nil {
		return err
	}
	if findRoom(rooms, number) == nil {
		return fmt.Errorf("%w: room %d", ErrRoomNotFound, number)
	}

	guests, err := d.store.LoadGuests(ctx, tenantID)
	if err != nil {
		return err
	}
	if roomHasCheckedInGuest(guests, number) {
		return fmt.Errorf("%w: room %d has a checked-in guest", ErrRoomOccupied, number)
	}

	kept := rooms[:0]
	for _, r := range rooms {
		if r.Number != number {
			kept = append(kept, r)
		}
	}
	return d.store.SaveRooms(ctx, tenantID, kept)
}
