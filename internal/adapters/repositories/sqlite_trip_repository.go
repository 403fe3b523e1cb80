package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// SQLite-backed implementation of the TripRepository port.
// Interests and the itinerary are stored as JSON columns; trips are
// small and only ever read back whole.
type SqliteTripRepository struct{ DB *sql.DB }

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{DB: db}
}

func (s *SqliteTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	if s.DB == nil {
		return errors.New("sqlite trip repository: DB is nil")
	}
	if trip == nil || trip.ID == "" {
		return errors.New("create trip: trip with non-empty id is required")
	}

	interests, itinerary, err := marshalTripColumns(trip)
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}

	query := `
	INSERT INTO trips (
		trip_id,
		destination,
		start_date,
		end_date,
		travelers,
		interests,
		status,
		itinerary,
		created_at,
		updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		trip.ID, trip.Destination, trip.StartDate, trip.EndDate, trip.Travelers,
		interests, trip.Status, itinerary, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create trip: insert trip_id=%q: %w", trip.ID, err)
	}

	return nil
}

func (s *SqliteTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		destination,
		start_date,
		end_date,
		travelers,
		interests,
		status,
		itinerary,
		created_at,
		updated_at
	FROM trips
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		trip, err := scanTrip(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

func (s *SqliteTripRepository) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		destination,
		start_date,
		end_date,
		travelers,
		interests,
		status,
		itinerary,
		created_at,
		updated_at
	FROM trips
	WHERE trip_id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, id)

	trip, err := scanTrip(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %q: %w", id, err)
	}

	return trip, nil
}

func (s *SqliteTripRepository) UpdateTrip(ctx context.Context, trip *domain.Trip) error {
	if s.DB == nil {
		return errors.New("sqlite trip repository: DB is nil")
	}
	if trip == nil || trip.ID == "" {
		return errors.New("update trip: trip with non-empty id is required")
	}

	interests, itinerary, err := marshalTripColumns(trip)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}

	query := `
	UPDATE trips
	SET destination = ?,
		start_date = ?,
		end_date = ?,
		travelers = ?,
		interests = ?,
		status = ?,
		itinerary = ?,
		updated_at = ?
	WHERE trip_id = ?;
	`
	res, err := s.DB.ExecContext(ctx, query,
		trip.Destination, trip.StartDate, trip.EndDate, trip.Travelers,
		interests, trip.Status, itinerary, time.Now().UTC(), trip.ID,
	)
	if err != nil {
		return fmt.Errorf("update trip %q: %w", trip.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trip %q: rows affected: %w", trip.ID, err)
	}
	if affected == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}

func (s *SqliteTripRepository) DeleteTrip(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("sqlite trip repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete trip %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}

func marshalTripColumns(trip *domain.Trip) (interests string, itinerary string, err error) {
	ib, err := json.Marshal(trip.Interests)
	if err != nil {
		return "", "", fmt.Errorf("marshal interests: %w", err)
	}

	itb, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return "", "", fmt.Errorf("marshal itinerary: %w", err)
	}

	return string(ib), string(itb), nil
}

func scanTrip(scan func(dest ...any) error) (*domain.Trip, error) {
	var trip domain.Trip
	var interests, itinerary string

	err := scan(
		&trip.ID, &trip.Destination, &trip.StartDate, &trip.EndDate, &trip.Travelers,
		&interests, &trip.Status, &itinerary, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(interests), &trip.Interests); err != nil {
		return nil, fmt.Errorf("unmarshal interests for trip %q: %w", trip.ID, err)
	}
	if err := json.Unmarshal([]byte(itinerary), &trip.Itinerary); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary for trip %q: %w", trip.ID, err)
	}

	return &trip, nil
}
