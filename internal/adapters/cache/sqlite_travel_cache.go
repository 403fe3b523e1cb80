package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
)

// SQLite backed cache of travel estimates, persisted across restarts.
// Coordinates are stored as their rendered "lat,lng" keys so lookups
// stay exact-match.
type SqliteTravelCache struct {
	DB *sql.DB
}

func NewSqliteTravelCache(db *sql.DB) *SqliteTravelCache {
	return &SqliteTravelCache{DB: db}
}

func (s *SqliteTravelCache) Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (int, bool, error) {
	if s.DB == nil {
		return 0, false, errors.New("travel cache: db is nil")
	}

	q := `
	SELECT minutes
	FROM travel_cache
	WHERE origin = ?
		AND destination = ?
		AND mode = ?;
	`

	var minutes int
	err := s.DB.QueryRowContext(ctx, q, coordKey(from), coordKey(to), string(mode)).Scan(&minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get travel cache: query travel_cache table: %w", err)
	}

	return minutes, true, nil
}

func (s *SqliteTravelCache) Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, minutes int) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO travel_cache (
		origin,
		destination,
		mode,
		minutes
	)
	VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, coordKey(from), coordKey(to), string(mode), minutes); err != nil {
		return fmt.Errorf("insert travel cache: %w", err)
	}

	return nil
}
