package hotel

import "errors"

// Domain errors surfaced to callers. Handlers map these onto HTTP statuses;
// anything else is treated as an internal failure.
var (
	// ErrDuplicateRoom is returned when creating a room whose number already
	// exists for the tenant.
	ErrDuplicateRoom = errors.New("room already exists")

	// ErrRoomNotFound is returned when a referenced room number does not
	// exist for the tenant.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomOccupied is returned when checking a guest into, moving a guest
	// onto, or deleting/freeing a room that a checked-in guest occupies.
	ErrRoomOccupied = errors.New("room is occupied")

	// ErrGuestNotFound is returned when a referenced guest id does not exist
	// for the tenant.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrNightNotFound is returned when a referenced night number does not
	// exist on the guest.
	ErrNightNotFound = errors.New("night not found")

	// ErrGuestCheckedIn is returned when deleting a guest that has not been
	// checked out yet.
	ErrGuestCheckedIn = errors.New("guest is still checked in")

	// ErrGuestCheckedOut is returned when checking out a guest whose stay has
	// already ended. Repeating the checkout would free the room under whoever
	// has since checked into it.
	ErrGuestCheckedOut = errors.New("guest is already checked out")

	// ErrValidation is returned for malformed input such as an empty guest
	// name or a non-positive room number.
	ErrValidation = errors.New("validation failed")
)
