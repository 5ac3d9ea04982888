package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createEventsTable(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'student',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create users table: %v", err)
		return err
	}
	return nil
}

func createEventsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			start_time TEXT NOT NULL DEFAULT '',
			end_time TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'academic',
			description TEXT NOT NULL DEFAULT '',
			classroom TEXT NOT NULL DEFAULT '',
			background_color TEXT NOT NULL DEFAULT '',
			registration_link TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create events table: %v", err)
		return err
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_events_date ON events (date)`); err != nil {
		log.Printf("Failed to create events date index: %v", err)
		return err
	}
	return nil
}
