package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"campus-connect/app/models"
)

// CreateEvent adds a new event to the database and returns its id
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (title, date, start_time, end_time, type, description, classroom, background_color, registration_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		event.Title,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Type,
		event.Description,
		event.Classroom,
		event.BackgroundColor,
		event.RegistrationLink,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetEvents retrieves all events from the database ordered by date
func GetEvents(db *sql.DB) ([]models.Event, error) {
	query := `
		SELECT id, title, date, start_time, end_time, type, description, classroom, background_color, registration_link, created_at, updated_at
		FROM events
		ORDER BY date ASC, created_at ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime,
			&e.Type, &e.Description, &e.Classroom, &e.BackgroundColor,
			&e.RegistrationLink, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// patchColumns maps an EventPatch onto column name / value pairs,
// keeping only the fields that were supplied.
func patchColumns(patch *models.EventPatch) ([]string, []interface{}) {
	var cols []string
	var args []interface{}

	add := func(col string, v interface{}) {
		cols = append(cols, col)
		args = append(args, v)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Classroom != nil {
		add("classroom", *patch.Classroom)
	}
	if patch.BackgroundColor != nil {
		add("background_color", *patch.BackgroundColor)
	}
	if patch.RegistrationLink != nil {
		add("registration_link", *patch.RegistrationLink)
	}
	return cols, args
}

// UpdateEvent merges only the supplied fields into an existing event
func UpdateEvent(db *sql.DB, id string, patch *models.EventPatch) error {
	cols, args := patchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	setParts := make([]string, 0, len(cols)+1)
	argIndex := 1
	for _, col := range cols {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, argIndex))
		argIndex++
	}
	setParts = append(setParts, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", strings.Join(setParts, ", "), argIndex)
	args = append(args, id)

	result, err := db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteEvent deletes an event by ID
func DeleteEvent(db *sql.DB, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// GetPastEventIDs returns the ids of all events dated strictly before the
// given instant (normally local start-of-today).
func GetPastEventIDs(db *sql.DB, before time.Time) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM events WHERE date < $1`, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetEventCategoryCounts returns the count of events for each category
func GetEventCategoryCounts(db *sql.DB) (map[string]int, error) {
	query := `SELECT type, COUNT(*) FROM events GROUP BY type`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}

	// Ensure defaults
	for _, cat := range models.AuthoredEventTypes {
		if _, ok := counts[string(cat)]; !ok {
			counts[string(cat)] = 0
		}
	}

	return counts, rows.Err()
}
