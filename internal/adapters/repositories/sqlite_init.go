package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		travelers INTEGER NOT NULL DEFAULT 1,
		interests TEXT NOT NULL DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'planned',
		itinerary TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	`

	createTravelCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		minutes INTEGER NOT NULL,
		PRIMARY KEY (origin, destination, mode)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_destination
	ON stops(destination);
	`

	statements := []string{
		createStopsQuery,
		createTripsQuery,
		createTravelCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	ID              string  `json:"id"`
	Destination     string  `json:"city"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"desc"`
	DurationMinutes int     `json:"duration_mins"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
}

// Populate the stop catalog from a JSON seed file.
// Missing optional fields are defaulted (duration 60, empty strings),
// never rejected; only id, city and name are required.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	rows := make([]StopSeed, 0, len(data))
	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed stops: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Destination) == "" {
			return fmt.Errorf("seed stops: item %q: city cannot be empty", item.ID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed stops: item %q: name cannot be empty", item.ID)
		}

		if item.DurationMinutes <= 0 {
			item.DurationMinutes = 60
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO stops (
		stop_id,
		destination,
		name,
		category,
		description,
		duration_minutes,
		lat,
		lng
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.ID, s.Destination, s.Name, s.Category, s.Description, s.DurationMinutes, s.Lat, s.Lng); err != nil {
			return fmt.Errorf("seed stops: insert stop_id=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
