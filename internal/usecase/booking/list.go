package booking

import (
	"context"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/dto"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

type ListBookingsInput struct {
	RoomID          uint
	Date            string
	StartDate       string
	EndDate         string
	IncludeChildren bool
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns bookings ordered by date, then start time.
func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]dto.BookingListDTO, error) {

	filter := domain.ListFilter{
		RoomID:          in.RoomID,
		IncludeChildren: in.IncludeChildren,
	}

	if in.Date != "" {
		day, err := timeslot.ParseDate(in.Date)
		if err != nil {
			return nil, domain.Invalid("date", "must be a YYYY-MM-DD calendar date")
		}
		filter.Date = day.Format(timeslot.DateLayout)
	}

	if in.StartDate != "" || in.EndDate != "" {
		if in.StartDate == "" || in.EndDate == "" {
			return nil, domain.Invalid("date_range", "start_date and end_date must be given together")
		}
		from, err := timeslot.ParseDate(in.StartDate)
		if err != nil {
			return nil, domain.Invalid("start_date", "must be a YYYY-MM-DD calendar date")
		}
		to, err := timeslot.ParseDate(in.EndDate)
		if err != nil {
			return nil, domain.Invalid("end_date", "must be a YYYY-MM-DD calendar date")
		}
		if to.Before(from) {
			return nil, domain.Invalid("end_date", "must not be before start_date")
		}
		filter.StartDate = from.Format(timeslot.DateLayout)
		filter.EndDate = to.Format(timeslot.DateLayout)
	}

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:                b.ID,
			RoomID:            b.RoomID,
			RoomName:          b.Room.Name,
			Title:             b.Title,
			Description:       b.Description,
			ContactName:       b.ContactName,
			Date:              b.BookingDate,
			StartTime:         b.StartTime,
			EndTime:           b.EndTime,
			IsRecurring:       b.IsRecurring,
			RecurrenceType:    b.RecurrenceType,
			RecurrenceEndDate: b.RecurrenceEndDate,
			ParentBookingID:   b.ParentBookingID,
			CreatedAt:         b.CreatedAt,
		})
	}

	return out, nil
}
