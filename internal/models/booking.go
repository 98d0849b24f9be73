package models

import "time"

// Recurrence frequencies carried by a parent booking.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Booking is one reserved interval of a room on a calendar day. Dates are
// plain "YYYY-MM-DD" strings and times zero-padded "HH:MM", so lexicographic
// comparison matches chronological order. The composite unique index backs
// the conflict check as the authoritative tie-breaker under concurrency.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint `gorm:"not null;uniqueIndex:idx_bookings_room_date_start,priority:1" json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	ContactName string `gorm:"size:100;not null" json:"contact_name"`

	BookingDate string `gorm:"size:10;not null;uniqueIndex:idx_bookings_room_date_start,priority:2" json:"booking_date"`
	StartTime   string `gorm:"size:5;not null;uniqueIndex:idx_bookings_room_date_start,priority:3" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`

	IsRecurring       bool   `gorm:"default:false" json:"is_recurring"`
	RecurrenceType    string `gorm:"size:10" json:"recurrence_type,omitempty"`
	RecurrenceEndDate string `gorm:"size:10" json:"recurrence_end_date,omitempty"`

	ParentBookingID *uint `gorm:"index" json:"parent_booking_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsChild reports whether the booking was materialized from a recurring
// parent.
func (b *Booking) IsChild() bool {
	return b.ParentBookingID != nil
}
