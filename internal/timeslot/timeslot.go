package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for booking dates. Dates carry no
// timezone; weekday math parses them in UTC.
const DateLayout = "2006-01-02"

var (
	ErrInvalidTime  = errors.New("invalid time of day")
	ErrInvalidRange = errors.New("start time must be before end time")
	ErrInvalidDate  = errors.New("invalid date")
)

// TimeOfDay is a zero-padded 24-hour "HH:MM" clock value. Because both
// components are zero-padded, lexicographic comparison of two values matches
// chronological order.
type TimeOfDay string

// Parse accepts "H", "H:MM" or "HH:MM" and returns the canonical zero-padded
// form. Anything else fails with ErrInvalidTime.
func Parse(raw string) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidTime
	}

	hourPart := s
	minutePart := "0"
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hourPart = s[:i]
		minutePart = s[i+1:]
		if len(minutePart) != 2 {
			return "", ErrInvalidTime
		}
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return "", ErrInvalidTime
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", ErrInvalidTime
	}

	return TimeOfDay(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

func (t TimeOfDay) String() string {
	return string(t)
}

func (t TimeOfDay) components() (hour, minute int) {
	hour, _ = strconv.Atoi(string(t)[:2])
	minute, _ = strconv.Atoi(string(t)[3:])
	return hour, minute
}

// DeriveEnd returns start plus exactly 60 minutes, the implicit booking
// length when a caller gives no end time. The hour wraps at midnight; the
// minute component is unchanged.
func DeriveEnd(start TimeOfDay) TimeOfDay {
	hour, minute := start.components()
	return TimeOfDay(fmt.Sprintf("%02d:%02d", (hour+1)%24, minute))
}

// ValidateRange fails unless start < end. Bookings never cross midnight, so
// the lexicographic comparison is the whole check.
func ValidateRange(start, end TimeOfDay) error {
	if start >= end {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether [aStart,aEnd) intersects [bStart,bEnd). Half-open
// semantics: back-to-back intervals sharing an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// MasterSlots is the fixed list of bookable hour labels shown to clients.
// Availability and free/busy views filter this list; actual bookings may use
// any start/end range.
var MasterSlots = []TimeOfDay{
	"08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00", "19:00",
	"20:00", "21:00", "22:00",
}
