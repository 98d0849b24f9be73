package booking

import (
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

// IsPermitted decides whether the room may be booked at the given date and
// time under its availability configuration, independent of existing
// reservations. A missing configuration means always available. Rule bounds
// are inclusive on both ends, so the closing boundary slot is itself
// bookable even though its duration runs past the window.
func IsPermitted(room *models.Room, date string, slot timeslot.TimeOfDay) bool {
	cfg := room.AvailabilityRules
	if cfg == nil || cfg.Type == models.AvailabilityAlways {
		return true
	}

	if cfg.Type != models.AvailabilityTimeRestricted {
		return false
	}

	day, err := timeslot.ParseDate(date)
	if err != nil {
		return false
	}
	weekday := int(day.Weekday())

	for _, rule := range cfg.Rules {
		if rule.Day != weekday {
			continue
		}
		if string(slot) >= rule.StartTime && string(slot) <= rule.EndTime {
			return true
		}
	}
	return false
}

// PermittedSlots filters the master slot list down to the labels that pass
// IsPermitted on the given date. Conflict filtering against existing
// bookings happens separately.
func PermittedSlots(room *models.Room, date string) []timeslot.TimeOfDay {
	slots := make([]timeslot.TimeOfDay, 0, len(timeslot.MasterSlots))
	for _, slot := range timeslot.MasterSlots {
		if IsPermitted(room, date, slot) {
			slots = append(slots, slot)
		}
	}
	return slots
}
