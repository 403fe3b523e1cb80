package ports

import (
	"context"
	"errors"

	"tour-planner-service/internal/domain"
)

// Returned by repositories when a trip id does not exist.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for persisting saved trips.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, trip *domain.Trip) error
	DeleteTrip(ctx context.Context, id string) error
}
