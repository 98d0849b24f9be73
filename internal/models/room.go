package models

import "time"

// Availability rule types stored in rooms.availability_rules.
const (
	AvailabilityAlways         = "always_available"
	AvailabilityTimeRestricted = "time_restricted"
)

// AvailabilityRule is one weekday time window. Weekday follows time.Weekday
// numbering (0 = Sunday). Times are zero-padded "HH:MM" strings; both bounds
// are inclusive.
type AvailabilityRule struct {
	Day       int    `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityRules is the availability configuration of a room. A nil
// configuration means the room is always available.
type AvailabilityRules struct {
	Type  string             `json:"type"`
	Rules []AvailabilityRule `json:"rules,omitempty"`
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Capacity    int      `gorm:"not null" json:"capacity"`
	Location    string   `gorm:"size:255" json:"location"`
	Features    []string `gorm:"serializer:json;type:jsonb" json:"features"`
	Description string   `gorm:"size:255" json:"description"`

	AvailabilityRules *AvailabilityRules `gorm:"serializer:json;type:jsonb" json:"availability_rules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
