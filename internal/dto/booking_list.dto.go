package dto

import "time"

type BookingListDTO struct {
	ID       uint   `json:"id"`
	RoomID   uint   `json:"room_id"`
	RoomName string `json:"room_name"`

	Title       string `json:"title"`
	Description string `json:"description"`
	ContactName string `json:"contact_name"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrenceType    string `json:"recurrence_type,omitempty"`
	RecurrenceEndDate string `json:"recurrence_end_date,omitempty"`
	ParentBookingID   *uint  `json:"parent_booking_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
