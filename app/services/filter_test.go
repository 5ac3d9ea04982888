package services

import (
	"testing"
	"time"

	"campus-connect/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func titles(events []models.Event) []string {
	var out []string
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func sameTitles(got []models.Event, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Title != want[i] {
			return false
		}
	}
	return true
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, time.March, 14, 17, 45, 12, 999, time.UTC)
	got := StartOfDay(ts)
	want := day(2026, time.March, 14)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay(%v) = %v, want %v", ts, got, want)
	}
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name   string
		cursor time.Time
		days   int
	}{
		{"january", day(2026, time.January, 15), 31},
		{"february", day(2026, time.February, 1), 28},
		{"february leap year", day(2028, time.February, 28), 29},
		{"april", day(2026, time.April, 30), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.cursor)
			if len(grid) != tt.days {
				t.Fatalf("got %d days, want %d", len(grid), tt.days)
			}
			if grid[0].Day() != 1 {
				t.Errorf("grid starts on day %d, want 1", grid[0].Day())
			}
			if grid[len(grid)-1].Day() != tt.days {
				t.Errorf("grid ends on day %d, want %d", grid[len(grid)-1].Day(), tt.days)
			}
			for i := 1; i < len(grid); i++ {
				if !grid[i-1].Before(grid[i]) {
					t.Errorf("grid not ascending at index %d", i)
				}
				if grid[i].Month() != tt.cursor.Month() {
					t.Errorf("grid contains out-of-month day %v", grid[i])
				}
			}
		})
	}
}

func TestEventsOnDayBoundaries(t *testing.T) {
	now := time.Date(2026, time.June, 10, 14, 30, 0, 0, time.UTC)

	events := []models.Event{
		{Title: "at midnight today", Date: day(2026, time.June, 10)},
		{Title: "yesterday", Date: day(2026, time.June, 9)},
		{Title: "tomorrow", Date: day(2026, time.June, 11)},
	}

	today := EventsOnDay(events, now, now)
	if !sameTitles(today, "at midnight today") {
		t.Errorf("today bucket = %v, want [at midnight today]", titles(today))
	}

	// A past event must not appear in its own day's bucket either,
	// even when that day's cell is being rendered.
	yesterday := EventsOnDay(events, day(2026, time.June, 9), now)
	if len(yesterday) != 0 {
		t.Errorf("yesterday bucket = %v, want empty", titles(yesterday))
	}

	tomorrow := TomorrowEvents(events, now)
	if !sameTitles(tomorrow, "tomorrow") {
		t.Errorf("tomorrow bucket = %v, want [tomorrow]", titles(tomorrow))
	}
}

func TestEventsOnDayPastMonthGrid(t *testing.T) {
	now := day(2026, time.June, 10)
	events := []models.Event{
		{Title: "last month", Date: day(2026, time.May, 20)},
	}

	// Rendering May's grid after it has passed: every cell stays empty.
	for _, d := range MonthGrid(day(2026, time.May, 1)) {
		if got := EventsOnDay(events, d, now); len(got) != 0 {
			t.Fatalf("bucket for %v = %v, want empty", d, titles(got))
		}
	}
}

func TestUpcomingEventsCutoffAndSort(t *testing.T) {
	now := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)
	events := []models.Event{
		{Title: "late june", Date: day(2026, time.June, 25)},
		{Title: "past", Date: day(2026, time.June, 9)},
		{Title: "today", Date: day(2026, time.June, 10)},
		{Title: "mid june", Date: day(2026, time.June, 15)},
	}

	got := UpcomingEvents(events, now, "", CategoryAll)
	if !sameTitles(got, "today", "mid june", "late june") {
		t.Fatalf("got %v, want [today mid june late june]", titles(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Errorf("result not sorted at index %d", i)
		}
	}
}

func TestUpcomingEventsStableTies(t *testing.T) {
	now := day(2026, time.June, 1)
	d := day(2026, time.June, 20)
	events := []models.Event{
		{Title: "first", Date: d},
		{Title: "second", Date: d},
		{Title: "third", Date: d},
	}

	got := UpcomingEvents(events, now, "", CategoryAll)
	if !sameTitles(got, "first", "second", "third") {
		t.Errorf("tie order not preserved: %v", titles(got))
	}
}

func TestUpcomingEventsSearch(t *testing.T) {
	now := day(2026, time.June, 1)
	events := []models.Event{
		{Title: "Hackathon Finals", Description: "24h coding sprint", Type: "academic", Classroom: "CS Block", Date: day(2026, time.June, 5)},
		{Title: "Annual Sports Meet", Description: "Track and field", Type: "sports", Classroom: "Main Ground", Date: day(2026, time.June, 6)},
		{Title: "Dance Night", Description: "cultural showcase", Type: "cultural", Date: day(2026, time.June, 7)},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match case-insensitive", "HACKATHON", []string{"Hackathon Finals"}},
		{"description match", "track", []string{"Annual Sports Meet"}},
		{"type match", "sport", []string{"Annual Sports Meet"}},
		{"classroom match", "cs block", []string{"Hackathon Finals"}},
		{"substring across fields", "cultural", []string{"Dance Night"}},
		{"no match", "robotics", nil},
		{"whitespace only is no filter", "   ", []string{"Hackathon Finals", "Annual Sports Meet", "Dance Night"}},
		{"empty is no filter", "", []string{"Hackathon Finals", "Annual Sports Meet", "Dance Night"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpcomingEvents(events, now, tt.query, CategoryAll)
			if !sameTitles(got, tt.want...) {
				t.Errorf("query %q: got %v, want %v", tt.query, titles(got), tt.want)
			}
		})
	}
}

func TestUpcomingEventsCategoryFilter(t *testing.T) {
	now := day(2026, time.June, 1)
	events := []models.Event{
		{Title: "Guest Lecture", Type: "academic", Date: day(2026, time.June, 5)},
		{Title: "Football Trials", Type: "sports", Date: day(2026, time.June, 6)},
		{Title: "Old Lab Session", Type: "lab", Date: day(2026, time.June, 7)},
	}

	if got := UpcomingEvents(events, now, "", "sports"); !sameTitles(got, "Football Trials") {
		t.Errorf("sports filter: got %v", titles(got))
	}
	if got := UpcomingEvents(events, now, "", CategoryAll); len(got) != 3 {
		t.Errorf("all sentinel: got %d events, want 3", len(got))
	}
	// Legacy types still filter by exact match.
	if got := UpcomingEvents(events, now, "", "lab"); !sameTitles(got, "Old Lab Session") {
		t.Errorf("legacy filter: got %v", titles(got))
	}
}

func TestUpcomingEventsSearchAndCategoryCombined(t *testing.T) {
	now := day(2026, time.June, 1)
	events := []models.Event{
		{Title: "Chess Open", Type: "sports", Description: "rapid format", Date: day(2026, time.June, 5)},
		{Title: "Chess Workshop", Type: "academic", Description: "openings", Date: day(2026, time.June, 6)},
	}

	got := UpcomingEvents(events, now, "chess", "sports")
	if !sameTitles(got, "Chess Open") {
		t.Errorf("combined filters: got %v", titles(got))
	}
}
