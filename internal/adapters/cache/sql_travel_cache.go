package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// SQLTravelCache is the Postgres variant of the travel estimate cache,
// used by deployments that share one database across instances.
type SQLTravelCache struct {
	DB *sql.DB
}

func NewSQLTravelCache(db *sql.DB) *SQLTravelCache {
	return &SQLTravelCache{DB: db}
}

// EnsureSchema creates the travel_cache table on a Postgres database.
// The SQLite variant relies on repositories.InitSchema instead.
func EnsureSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS travel_cache (
		origin      TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode        TEXT NOT NULL,
		minutes     INTEGER NOT NULL,
		PRIMARY KEY (origin, destination, mode)
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("ensure travel_cache schema: %w", err)
	}

	return nil
}

func (s *SQLTravelCache) Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (_ int, _ bool, err error) {
	defer obs.Time(ctx, "travel.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("travel cache: db is nil")
	}

	q := `
	SELECT minutes
	FROM travel_cache
	WHERE origin = $1
		AND destination = $2
		AND mode = $3;
	`

	var minutes int
	err = s.DB.QueryRowContext(ctx, q, coordKey(from), coordKey(to), string(mode)).Scan(&minutes)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get travel cache: query travel_cache table: %w", err)
	}

	return minutes, true, nil
}

func (s *SQLTravelCache) Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, minutes int) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}

	q := `
	INSERT INTO travel_cache (origin, destination, mode, minutes)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination, mode) DO UPDATE
	SET minutes = EXCLUDED.minutes;
	`

	if _, err := s.DB.ExecContext(ctx, q, coordKey(from), coordKey(to), string(mode), minutes); err != nil {
		return fmt.Errorf("insert travel cache: %w", err)
	}

	return nil
}
