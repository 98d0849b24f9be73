package booking

import (
	"context"

	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

// ListFilter narrows a booking listing. Zero values mean "no filter".
// StartDate/EndDate select an inclusive date range and are only applied
// together. IncludeChildren keeps materialized recurring occurrences in the
// result; when false only parents and single bookings are returned.
type ListFilter struct {
	RoomID          uint
	Date            string
	StartDate       string
	EndDate         string
	IncludeChildren bool
}

type Repository interface {
	// -------- Room --------
	GetRoom(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	// -------- Conflict detection --------
	FindConflicts(
		ctx context.Context,
		roomID uint,
		date string,
		start timeslot.TimeOfDay,
		end timeslot.TimeOfDay,
		excludeBookingID uint,
	) ([]models.Booking, error)

	// -------- Booking (write) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	DeleteChildren(
		ctx context.Context,
		parentID uint,
	) (int64, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	CountBookingsForRoom(
		ctx context.Context,
		roomID uint,
	) (int64, error)
}
