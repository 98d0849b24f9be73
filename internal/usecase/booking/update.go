package booking

import (
	"context"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
)

type UpdateBookingInput struct {
	BookingID uint

	RoomID uint

	Title       string
	Description string
	ContactName string

	Date      string
	StartTime string
	EndTime   string

	Recurrence *RecurrenceInput
}

type UpdateBooking struct {
	repo domain.Repository
}

func NewUpdateBooking(repo domain.Repository) *UpdateBooking {
	return &UpdateBooking{repo: repo}
}

// Execute overwrites the row wholesale after re-validating the range and
// re-running the conflict check with the booking itself excluded, so a
// booking can be moved without self-conflicting. Changing the recurrence
// fields of a parent does not regenerate its children.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	norm, err := normalizeRange(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	room, err := uc.repo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	if !domain.IsPermitted(room, norm.Date, norm.Start) {
		return nil, &domain.UnavailableError{
			RoomID: room.ID,
			Date:   norm.Date,
			Slot:   norm.Start.String(),
		}
	}

	conflicts, err := uc.repo.FindConflicts(ctx, room.ID, norm.Date, norm.Start, norm.End, b.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{
			RoomID:    room.ID,
			Date:      norm.Date,
			Conflicts: conflicts,
		}
	}

	b.RoomID = room.ID
	b.Title = in.Title
	b.Description = in.Description
	b.ContactName = in.ContactName
	b.BookingDate = norm.Date
	b.StartTime = norm.Start.String()
	b.EndTime = norm.End.String()

	b.IsRecurring = false
	b.RecurrenceType = ""
	b.RecurrenceEndDate = ""
	if in.Recurrence != nil {
		freq, _, untilDate, err := normalizeRecurrence(in.Recurrence, norm.Day)
		if err != nil {
			return nil, err
		}
		b.IsRecurring = true
		b.RecurrenceType = string(freq)
		b.RecurrenceEndDate = untilDate
	}

	if err := uc.repo.SaveBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
