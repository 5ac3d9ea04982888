package models

import "testing"

func TestNormalizeEventType(t *testing.T) {
	tests := []struct {
		in   string
		want EventType
	}{
		{"academic", EventAcademic},
		{"cultural", EventCultural},
		{"sports", EventSports},
		{"other", EventOther},
		{"lab", EventAcademic},     // legacy value
		{"seminar", EventAcademic}, // legacy value
		{"", EventAcademic},
		{"ACADEMIC", EventAcademic}, // case matters in stored data
	}
	for _, tt := range tests {
		if got := NormalizeEventType(tt.in); got != tt.want {
			t.Errorf("NormalizeEventType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventTypeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"academic", "#1976d2"},
		{"lab", "#2e7d32"},
		{"seminar", "#ed6c02"},
		{"cultural", "#ab47bc"},
		{"sports", "#ef5350"},
		{"other", "#00897b"},
		{"unknown-legacy", "#1976d2"},
		{"", "#1976d2"},
	}
	for _, tt := range tests {
		if got := EventTypeColor(tt.in); got != tt.want {
			t.Errorf("EventTypeColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	student := &User{Role: RoleStudent}
	var nobody *User

	if !admin.IsAdmin() {
		t.Error("admin.IsAdmin() = false")
	}
	if student.IsAdmin() {
		t.Error("student.IsAdmin() = true")
	}
	if nobody.IsAdmin() {
		t.Error("nil user reported as admin")
	}
}
