package models

// EventType defines the category of a calendar event.
type EventType string

const (
	EventAcademic EventType = "academic"
	EventCultural EventType = "cultural"
	EventSports   EventType = "sports"
	EventOther    EventType = "other"
)

// AuthoredEventTypes lists the categories offered when creating a new
// event. Legacy values ("lab", "seminar") still exist in stored data and
// are tolerated for display, but cannot be authored anymore.
var AuthoredEventTypes = []EventType{EventAcademic, EventCultural, EventSports, EventOther}

// IsAuthoredEventType reports whether t belongs to the closed authored set.
func IsAuthoredEventType(t string) bool {
	for _, a := range AuthoredEventTypes {
		if string(a) == t {
			return true
		}
	}
	return false
}

// NormalizeEventType maps a stored type onto the authored set for use in
// an edit form. Legacy and unknown values fall back to academic.
func NormalizeEventType(t string) EventType {
	if IsAuthoredEventType(t) {
		return EventType(t)
	}
	return EventAcademic
}

var eventTypeColors = map[string]string{
	"academic": "#1976d2",
	"lab":      "#2e7d32",
	"seminar":  "#ed6c02",
	"cultural": "#ab47bc",
	"sports":   "#ef5350",
	"other":    "#00897b",
}

// EventTypeColor returns the display color for an event type. Legacy
// values keep their historical colors; anything unrecognized gets the
// academic default.
func EventTypeColor(t string) string {
	if c, ok := eventTypeColors[t]; ok {
		return c
	}
	return "#1976d2"
}

// RoleName defines the possible user roles.
type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleStudent RoleName = "student"
)
