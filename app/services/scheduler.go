package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"

	"campus-connect/app/metrics"
)

// StartScheduler starts the background task scheduler. Past events are
// swept nightly at 00:05 local time; the manual cleanup endpoint remains
// available to admins in between runs.
func StartScheduler(db *sql.DB) *cron.Cron {
	store := NewEventStore(db)

	c := cron.New()
	_, err := c.AddFunc("5 0 * * *", func() {
		log.Println("Triggering scheduled past-event cleanup [00:05]...")
		deleted, err := store.CleanupPastEvents()
		if err != nil {
			log.Printf("Error cleaning up past events: %v", err)
			return
		}
		metrics.EventsCleaned.Add(float64(deleted))
	})
	if err != nil {
		log.Printf("Failed to schedule cleanup task: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
