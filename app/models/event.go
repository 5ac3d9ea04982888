package models

import "time"

// Event represents a campus calendar event
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	StartTime        string    `json:"start_time,omitempty"` // "HH:MM", optional
	EndTime          string    `json:"end_time,omitempty"`   // "HH:MM", optional
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	Classroom        string    `json:"classroom,omitempty"`
	BackgroundColor  string    `json:"background_color,omitempty"` // derived from Type when saved
	RegistrationLink string    `json:"registration_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EventPatch carries a partial update: nil fields are left untouched.
type EventPatch struct {
	Title            *string    `json:"title"`
	Date             *time.Time `json:"-"`
	StartTime        *string    `json:"start_time"`
	EndTime          *string    `json:"end_time"`
	Type             *string    `json:"type"`
	Description      *string    `json:"description"`
	Classroom        *string    `json:"classroom"`
	BackgroundColor  *string    `json:"-"`
	RegistrationLink *string    `json:"registration_link"`
}
