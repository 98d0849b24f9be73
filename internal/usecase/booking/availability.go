package booking

import (
	"context"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

type AvailabilityInput struct {
	RoomID uint
	Date   string
	Time   string
}

// AvailabilityResult is the free/busy view of one room on one date. When a
// specific time was asked, TimeChecked is true and Available holds the
// rules-only verdict (existing reservations are not consulted, matching the
// slot-check semantics clients expect before picking from the free list).
type AvailabilityResult struct {
	Room *models.Room
	Date string

	TimeChecked bool
	Time        string
	Available   bool

	PermittedSlots []timeslot.TimeOfDay
	BookedSlots    []timeslot.TimeOfDay
	FreeSlots      []timeslot.TimeOfDay
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	room, err := uc.repo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	day, err := timeslot.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Invalid("date", "must be a YYYY-MM-DD calendar date")
	}
	date := day.Format(timeslot.DateLayout)

	res := &AvailabilityResult{Room: room, Date: date}

	if in.Time != "" {
		slot, err := timeslot.Parse(in.Time)
		if err != nil {
			return nil, domain.Invalid("time", "must be a HH:MM time of day")
		}
		res.TimeChecked = true
		res.Time = slot.String()
		res.Available = domain.IsPermitted(room, date, slot)
		return res, nil
	}

	res.PermittedSlots = domain.PermittedSlots(room, date)

	bookings, err := uc.repo.ListBookings(ctx, domain.ListFilter{
		RoomID:          room.ID,
		Date:            date,
		IncludeChildren: true,
	})
	if err != nil {
		return nil, err
	}

	// A slot label is booked when its one-hour interval overlaps any
	// reservation on the date.
	slotBooked := func(slot timeslot.TimeOfDay) bool {
		slotEnd := timeslot.DeriveEnd(slot)
		for _, b := range bookings {
			if timeslot.Overlaps(slot, slotEnd, timeslot.TimeOfDay(b.StartTime), timeslot.TimeOfDay(b.EndTime)) {
				return true
			}
		}
		return false
	}

	res.BookedSlots = make([]timeslot.TimeOfDay, 0)
	for _, slot := range timeslot.MasterSlots {
		if slotBooked(slot) {
			res.BookedSlots = append(res.BookedSlots, slot)
		}
	}

	res.FreeSlots = make([]timeslot.TimeOfDay, 0, len(res.PermittedSlots))
	for _, slot := range res.PermittedSlots {
		if !slotBooked(slot) {
			res.FreeSlots = append(res.FreeSlots, slot)
		}
	}

	return res, nil
}
