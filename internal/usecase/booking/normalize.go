package booking

import (
	"time"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/recurrence"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

// RecurrenceInput is the optional series descriptor on create/update.
type RecurrenceInput struct {
	Type    string `json:"type"`
	EndDate string `json:"end_date"`
}

type normalizedRange struct {
	Date  string
	Day   time.Time
	Start timeslot.TimeOfDay
	End   timeslot.TimeOfDay
}

// normalizeRange parses and canonicalizes the date and time range of a write.
// A missing end time defaults to start plus one hour.
func normalizeRange(date, startRaw, endRaw string) (normalizedRange, error) {
	var norm normalizedRange

	day, err := timeslot.ParseDate(date)
	if err != nil {
		return norm, domain.Invalid("date", "must be a YYYY-MM-DD calendar date")
	}

	start, err := timeslot.Parse(startRaw)
	if err != nil {
		return norm, domain.Invalid("start_time", "must be a HH:MM time of day")
	}

	end := timeslot.DeriveEnd(start)
	if endRaw != "" {
		end, err = timeslot.Parse(endRaw)
		if err != nil {
			return norm, domain.Invalid("end_time", "must be a HH:MM time of day")
		}
	}

	if err := timeslot.ValidateRange(start, end); err != nil {
		return norm, domain.Invalid("end_time", "must be after start_time")
	}

	norm.Day = day
	norm.Date = day.Format(timeslot.DateLayout)
	norm.Start = start
	norm.End = end
	return norm, nil
}

// normalizeRecurrence validates the series descriptor against the first
// booking date and returns the frequency plus the inclusive series end.
func normalizeRecurrence(rec *RecurrenceInput, firstDay time.Time) (recurrence.Frequency, time.Time, string, error) {
	freq := recurrence.Frequency(rec.Type)
	if !recurrence.Valid(freq) {
		return "", time.Time{}, "", domain.Invalid("recurrence.type", "must be daily, weekly or monthly")
	}

	until, err := timeslot.ParseDate(rec.EndDate)
	if err != nil {
		return "", time.Time{}, "", domain.Invalid("recurrence.end_date", "must be a YYYY-MM-DD calendar date")
	}
	if until.Before(firstDay) {
		return "", time.Time{}, "", domain.Invalid("recurrence.end_date", "must not be before the booking date")
	}

	return freq, until, until.Format(timeslot.DateLayout), nil
}
