package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/recurrence"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateBookingInput struct {
	RoomID uint

	Title       string
	Description string
	ContactName string

	Date      string
	StartTime string
	EndTime   string

	Recurrence *RecurrenceInput
}

// SkippedDate records one series occurrence that was dropped instead of
// persisted.
type SkippedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// CreateBookingResult is the aggregate outcome of a create. For a single
// booking only Booking and Total (= 1) are set. For a recurring series the
// parent is Booking, Created holds the materialized children and Skipped the
// dates dropped per-date; the series is deliberately best-effort, not
// transactional.
type CreateBookingResult struct {
	Booking *models.Booking  `json:"booking"`
	Created []models.Booking `json:"created,omitempty"`
	Skipped []SkippedDate    `json:"skipped,omitempty"`

	CreatedCount  int `json:"created_count"`
	ConflictCount int `json:"conflict_count"`
	Total         int `json:"total"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	// --------------------------------------------------
	// 1. Normalize date / time range
	// --------------------------------------------------
	norm, err := normalizeRange(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format(timeslot.DateLayout)
	if norm.Date < today {
		return nil, domain.Invalid("date", "cannot be in the past")
	}

	var (
		freq      recurrence.Frequency
		until     time.Time
		untilDate string
	)
	if in.Recurrence != nil {
		freq, until, untilDate, err = normalizeRecurrence(in.Recurrence, norm.Day)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2. Room must exist
	// --------------------------------------------------
	room, err := uc.repo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Availability window
	// --------------------------------------------------
	if !domain.IsPermitted(room, norm.Date, norm.Start) {
		return nil, &domain.UnavailableError{
			RoomID: room.ID,
			Date:   norm.Date,
			Slot:   norm.Start.String(),
		}
	}

	// --------------------------------------------------
	// 4. Conflicts on the first date
	// --------------------------------------------------
	conflicts, err := uc.repo.FindConflicts(ctx, room.ID, norm.Date, norm.Start, norm.End, 0)
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

	// --------------------------------------------------
	// 5. Persist parent / single booking
	// --------------------------------------------------
	parent := &models.Booking{
		RoomID:      room.ID,
		Title:       in.Title,
		Description: in.Description,
		ContactName: in.ContactName,
		BookingDate: norm.Date,
		StartTime:   norm.Start.String(),
		EndTime:     norm.End.String(),
	}
	if in.Recurrence != nil {
		parent.IsRecurring = true
		parent.RecurrenceType = string(freq)
		parent.RecurrenceEndDate = untilDate
	}

	if err := uc.repo.CreateBooking(ctx, parent); err != nil {
		return nil, err
	}

	res := &CreateBookingResult{Booking: parent, Total: 1}
	if in.Recurrence == nil {
		return res, nil
	}

	// --------------------------------------------------
	// 6. Materialize the series, best-effort per date
	// --------------------------------------------------
	dates := recurrence.Expand(norm.Day, freq, until)
	for _, day := range dates[1:] {

		// A caller deadline aborts between dates; children written so far
		// stay valid and are reported as created.
		if ctx.Err() != nil {
			break
		}

		date := day.Format(timeslot.DateLayout)

		if !domain.IsPermitted(room, date, norm.Start) {
			res.Skipped = append(res.Skipped, SkippedDate{Date: date, Reason: domain.SkipUnavailable})
			continue
		}

		conflicts, err := uc.repo.FindConflicts(ctx, room.ID, date, norm.Start, norm.End, 0)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			res.Skipped = append(res.Skipped, SkippedDate{Date: date, Reason: domain.SkipConflict})
			continue
		}

		child := models.Booking{
			RoomID:          room.ID,
			Title:           in.Title,
			Description:     in.Description,
			ContactName:     in.ContactName,
			BookingDate:     date,
			StartTime:       norm.Start.String(),
			EndTime:         norm.End.String(),
			ParentBookingID: &parent.ID,
		}

		if err := uc.repo.CreateBooking(ctx, &child); err != nil {
			var conflictErr *domain.ConflictError
			if errors.As(err, &conflictErr) {
				// Lost the insert race for this date; count it like a
				// pre-detected conflict and keep going.
				res.Skipped = append(res.Skipped, SkippedDate{Date: date, Reason: domain.SkipConflict})
				continue
			}
			return nil, err
		}

		res.Created = append(res.Created, child)
	}

	res.CreatedCount = len(res.Created)
	for _, s := range res.Skipped {
		if s.Reason == domain.SkipConflict {
			res.ConflictCount++
		}
	}
	res.Total = 1 + res.CreatedCount

	return res, nil
}
