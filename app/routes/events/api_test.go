package events

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("2026-09-15")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 15 {
		t.Errorf("parsed %v, want 2026-09-15", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("parsed time of day %02d:%02d, want midnight", got.Hour(), got.Minute())
	}

	for _, bad := range []string{"", "15-09-2026", "2026-13-01", "tomorrow"} {
		if _, err := parseEventDate(bad); err == nil {
			t.Errorf("parseEventDate(%q) accepted", bad)
		}
	}
}

// Create/update validation must reject before any store work: the nil
// test database guarantees a panic if these requests get that far.
func TestCreateEventValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/events/", CreateEventAPI)

	tests := []struct {
		name    string
		body    map[string]string
		wantMsg string
	}{
		{"missing title", map[string]string{"date": "2026-09-15"}, "Event title is required"},
		{"blank title", map[string]string{"title": "   ", "date": "2026-09-15"}, "Event title is required"},
		{"missing date", map[string]string{"title": "Tech Talk"}, "Event date is required"},
		{"malformed date", map[string]string{"title": "Tech Talk", "date": "soon"}, "Please provide a valid date"},
		{"legacy type rejected for new events", map[string]string{"title": "Tech Talk", "date": "2026-09-15", "type": "seminar"}, "Invalid event type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/api/events/", bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			raw, _ := io.ReadAll(resp.Body)
			var decoded map[string]interface{}
			_ = json.Unmarshal(raw, &decoded)
			if got, _ := decoded["error"].(string); got != tt.wantMsg {
				t.Errorf("error = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUpdateEventValidation(t *testing.T) {
	app := fiber.New()
	app.Put("/api/events/:id", UpdateEventAPI)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"blank title", `{"title": "  "}`, "Event title is required"},
		{"malformed date", `{"date": "next week"}`, "Please provide a valid date"},
		{"legacy type rejected", `{"type": "lab"}`, "Invalid event type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/events/abc123", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			raw, _ := io.ReadAll(resp.Body)
			var decoded map[string]interface{}
			_ = json.Unmarshal(raw, &decoded)
			if got, _ := decoded["error"].(string); got != tt.wantMsg {
				t.Errorf("error = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}
