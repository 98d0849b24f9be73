package booking

import (
	"context"
	"sort"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

// fakeRepo is an in-memory domain.Repository with the same conflict and
// uniqueness semantics as the Postgres implementation, including the
// duplicate-key rejection on (room_id, booking_date, start_time).
type fakeRepo struct {
	rooms    map[uint]*models.Room
	bookings map[uint]*models.Booking
	nextID   uint

	// insertConflictDates forces CreateBooking on these booking dates to fail
	// with a ConflictError, simulating a concurrent writer winning the race
	// between conflict check and insert.
	insertConflictDates map[string]bool
}

func newFakeRepo(rooms ...*models.Room) *fakeRepo {
	r := &fakeRepo{
		rooms:               make(map[uint]*models.Room),
		bookings:            make(map[uint]*models.Booking),
		insertConflictDates: make(map[string]bool),
	}
	for i, room := range rooms {
		if room.ID == 0 {
			room.ID = uint(i + 1)
		}
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeRepo) seedBooking(b models.Booking) *models.Booking {
	r.nextID++
	b.ID = r.nextID
	if b.EndTime == "" {
		b.EndTime = string(timeslot.DeriveEnd(timeslot.TimeOfDay(b.StartTime)))
	}
	r.bookings[b.ID] = &b
	return &b
}

func (r *fakeRepo) GetRoom(_ context.Context, id uint) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "room", ID: id}
	}
	return room, nil
}

func (r *fakeRepo) FindConflicts(
	_ context.Context,
	roomID uint,
	date string,
	start timeslot.TimeOfDay,
	end timeslot.TimeOfDay,
	excludeBookingID uint,
) ([]models.Booking, error) {

	var conflicts []models.Booking
	for _, b := range r.bookings {
		if b.RoomID != roomID || b.BookingDate != date || b.ID == excludeBookingID {
			continue
		}
		if timeslot.Overlaps(timeslot.TimeOfDay(b.StartTime), timeslot.TimeOfDay(b.EndTime), start, end) {
			conflicts = append(conflicts, *b)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].StartTime < conflicts[j].StartTime
	})
	return conflicts, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.insertConflictDates[b.BookingDate] {
		return &domain.ConflictError{RoomID: b.RoomID, Date: b.BookingDate}
	}
	for _, existing := range r.bookings {
		if existing.RoomID == b.RoomID &&
			existing.BookingDate == b.BookingDate &&
			existing.StartTime == b.StartTime {
			return &domain.ConflictError{RoomID: b.RoomID, Date: b.BookingDate}
		}
	}

	r.nextID++
	b.ID = r.nextID
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) SaveBooking(_ context.Context, b *models.Booking) error {
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) DeleteChildren(_ context.Context, parentID uint) (int64, error) {
	var deleted int64
	for id, b := range r.bookings {
		if b.ParentBookingID != nil && *b.ParentBookingID == parentID {
			delete(r.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) ListBookings(_ context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.RoomID != 0 && b.RoomID != filter.RoomID {
			continue
		}
		if filter.Date != "" && b.BookingDate != filter.Date {
			continue
		}
		if filter.StartDate != "" && filter.EndDate != "" {
			if b.BookingDate < filter.StartDate || b.BookingDate > filter.EndDate {
				continue
			}
		}
		if !filter.IncludeChildren && b.ParentBookingID != nil {
			continue
		}

		copied := *b
		if room, ok := r.rooms[b.RoomID]; ok {
			copied.Room = *room
		}
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate < out[j].BookingDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *fakeRepo) CountBookingsForRoom(_ context.Context, roomID uint) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
