package services

import (
	"database/sql"
	"log"
	"time"

	"campus-connect/app/database"
	"campus-connect/app/models"
)

// EventStore adapts the events table to the in-memory event record. Read
// failures are swallowed so the calendar degrades to an empty view
// instead of erroring; write failures propagate to the caller.
type EventStore struct {
	DB *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{DB: db}
}

// ListEvents fetches all persisted events. Any error on the read path is
// logged and reported as an empty collection.
func (s *EventStore) ListEvents() []models.Event {
	events, err := database.GetEvents(s.DB)
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		return nil
	}
	return events
}

// CreateEvent persists a new event and returns its assigned id. The
// background color is derived from the event type at save time.
func (s *EventStore) CreateEvent(event *models.Event) (string, error) {
	event.BackgroundColor = models.EventTypeColor(event.Type)
	if err := database.CreateEvent(s.DB, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// UpdateEvent merges the supplied fields into an existing event. When the
// patch carries a type, the derived color is re-saved alongside it.
func (s *EventStore) UpdateEvent(id string, patch *models.EventPatch) error {
	if patch.Type != nil {
		color := models.EventTypeColor(*patch.Type)
		patch.BackgroundColor = &color
	}
	return database.UpdateEvent(s.DB, id, patch)
}

func (s *EventStore) DeleteEvent(id string) error {
	return database.DeleteEvent(s.DB, id)
}

// CleanupPastEvents deletes every event dated strictly before local
// start-of-today and returns the number deleted. The select-then-delete
// sequence is not atomic: an event created concurrently may be missed
// until the next pass, and rows already gone by delete time are simply
// skipped.
func (s *EventStore) CleanupPastEvents() (int, error) {
	cutoff := StartOfDay(time.Now())

	ids, err := database.GetPastEventIDs(s.DB, cutoff)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, id := range ids {
		if err := database.DeleteEvent(s.DB, id); err != nil {
			log.Printf("Error deleting past event %s: %v", id, err)
			continue
		}
		deleted++
	}
	log.Printf("Cleaned up %d past events", deleted)
	return deleted, nil
}
