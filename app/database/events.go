package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const eventSelect = `SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.location,
		e.term_id, COALESCE(t.name, ''), e.is_published, e.created_at, e.updated_at
		FROM events e
		LEFT JOIN terms t ON e.term_id = t.id`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location,
		&e.TermID, &e.TermName, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectEvents(rows *sql.Rows) ([]*models.Event, error) {
	defer rows.Close()
	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, rows.Err()
}

// GetUpcomingEvents lists published events that have not ended yet.
func GetUpcomingEvents(db *sql.DB, limit int) ([]*models.Event, error) {
	query := eventSelect + ` WHERE e.is_published = true AND e.end_date >= NOW()
			 ORDER BY e.start_date`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func GetAllEvents(db *sql.DB) ([]*models.Event, error) {
	rows, err := db.Query(eventSelect + ` ORDER BY e.start_date DESC`)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	return scanEvent(db.QueryRow(eventSelect+` WHERE e.id = $1`, id))
}

func CreateEvent(db *sql.DB, e *models.Event) error {
	query := `INSERT INTO events (title, description, start_date, end_date, location, term_id, is_published)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, e.Title, e.Description, e.StartDate, e.EndDate, e.Location,
		e.TermID, e.IsPublished).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateEvent(db *sql.DB, e *models.Event) error {
	query := `UPDATE events SET title = $1, description = $2, start_date = $3, end_date = $4,
			  location = $5, term_id = $6, is_published = $7, updated_at = NOW()
			  WHERE id = $8 RETURNING updated_at`
	return db.QueryRow(query, e.Title, e.Description, e.StartDate, e.EndDate, e.Location,
		e.TermID, e.IsPublished, e.ID).Scan(&e.UpdatedAt)
}

func DeleteEvent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM events WHERE id = $1`, id)
	return err
}
