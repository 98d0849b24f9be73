package recurrence

import "time"

// Frequency is the step size of a recurring series.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Valid reports whether f is a supported frequency.
func Valid(f Frequency) bool {
	switch f {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Expand returns every date the series occupies, inclusive of both start and
// until, ordered ascending. Monthly steps use time.AddDate, which normalizes
// short months (Jan 31 + 1 month rolls into early March). An unrecognized
// frequency yields just the start date.
func Expand(start time.Time, f Frequency, until time.Time) []time.Time {
	dates := []time.Time{start}
	if !Valid(f) {
		return dates
	}

	step := func(t time.Time) time.Time {
		switch f {
		case Daily:
			return t.AddDate(0, 0, 1)
		case Weekly:
			return t.AddDate(0, 0, 7)
		default:
			return t.AddDate(0, 1, 0)
		}
	}

	for cur := step(start); !cur.After(until); cur = step(cur) {
		dates = append(dates, cur)
	}
	return dates
}
