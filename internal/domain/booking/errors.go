package booking

import (
	"fmt"

	"github.com/raumbelegung/room-booking-api/internal/models"
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an absent room or booking.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError carries the bookings that collide with a requested interval,
// whether detected by the conflict query or by the storage-level uniqueness
// constraint losing a race.
type ConflictError struct {
	RoomID    uint
	Date      string
	Conflicts []models.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"room %d already booked on %s (%d overlapping bookings)",
		e.RoomID, e.Date, len(e.Conflicts),
	)
}

// UnavailableError reports a request outside the room's availability windows,
// before any existing reservation is considered.
type UnavailableError struct {
	RoomID uint
	Date   string
	Slot   string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("room %d is not open on %s at %s", e.RoomID, e.Date, e.Slot)
}

// Skip reasons recorded for dates dropped from a recurring series.
const (
	SkipConflict    = "time_conflict"
	SkipUnavailable = "room_unavailable"
)
