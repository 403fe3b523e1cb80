package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
)

// SQLite-backed implementation of the StopSource port: the persistent
// stop catalog. Interests are ignored here; they only steer
// generation-backed sources.
type SqliteStopRepository struct{ DB *sql.DB }

func NewSqliteStopRepository(db *sql.DB) *SqliteStopRepository {
	return &SqliteStopRepository{DB: db}
}

// Return all catalog stops for the destination, case-insensitively.
func (s *SqliteStopRepository) ListStops(ctx context.Context, destination string, interests []string) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite stop repository: DB is nil")
	}

	query := `
	SELECT
		name,
		category,
		description,
		duration_minutes,
		lat,
		lng
	FROM stops
	WHERE lower(destination) = lower(?)
	ORDER BY stop_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, destination)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 32)
	for rows.Next() {
		var st domain.Stop
		err := rows.Scan(&st.Name, &st.Category, &st.Description, &st.DurationMinutes, &st.Coord.Lat, &st.Coord.Lng)
		if err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		stops = append(stops, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}
