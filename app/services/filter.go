package services

import (
	"sort"
	"strings"
	"time"

	"campus-connect/app/models"
)

// CategoryAll is the sentinel category filter meaning "no filter".
const CategoryAll = "all"

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid returns one date per day of the month containing cursor, in
// ascending order from the 1st to the last day. No out-of-month padding
// days are produced; the caller renders one cell per entry.
func MonthGrid(cursor time.Time) []time.Time {
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	next := first.AddDate(0, 1, 0)

	var days []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// EventsOnDay returns the events falling on the same calendar day as the
// given date. Day buckets only ever contain events from today onward:
// a past-dated event never shows in a bucket, even when the grid being
// rendered belongs to a past month.
func EventsOnDay(events []models.Event, day, now time.Time) []models.Event {
	cutoff := StartOfDay(now)

	var matched []models.Event
	for _, e := range events {
		if sameDay(e.Date, day) && !e.Date.Before(cutoff) {
			matched = append(matched, e)
		}
	}
	return matched
}

// TodayEvents returns the bucket for the current day.
func TodayEvents(events []models.Event, now time.Time) []models.Event {
	return EventsOnDay(events, now, now)
}

// TomorrowEvents returns the bucket for the day after the current day.
func TomorrowEvents(events []models.Event, now time.Time) []models.Event {
	return EventsOnDay(events, now.AddDate(0, 0, 1), now)
}

func matchesSearch(e *models.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query) ||
		strings.Contains(strings.ToLower(e.Type), query) ||
		(e.Classroom != "" && strings.Contains(strings.ToLower(e.Classroom), query))
}

// UpcomingEvents returns the search- and category-filtered projection of
// all events dated today or later, sorted ascending by date. The sort is
// stable: events on the same date keep their input order. searchQuery is
// trimmed and case-folded; an empty query after trimming applies no
// search filter, and category CategoryAll applies no category filter.
func UpcomingEvents(events []models.Event, now time.Time, searchQuery, category string) []models.Event {
	cutoff := StartOfDay(now)

	var filtered []models.Event
	for _, e := range events {
		if !e.Date.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}

	if query := strings.ToLower(strings.TrimSpace(searchQuery)); query != "" {
		kept := filtered[:0]
		for i := range filtered {
			if matchesSearch(&filtered[i], query) {
				kept = append(kept, filtered[i])
			}
		}
		filtered = kept
	}

	if category != "" && category != CategoryAll {
		kept := filtered[:0]
		for _, e := range filtered {
			if e.Type == category {
				kept = append(kept, e)
			}
		}
		filtered = kept
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered
}
