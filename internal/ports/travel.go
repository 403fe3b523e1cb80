package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Contract for an external travel-time lookup between two coordinates.
// Implementations may fail (network, malformed responses); the estimator
// owns the fallback decision and never surfaces these errors to callers.
type TravelLookup interface {
	// Return the estimated travel time in whole minutes.
	LookupMinutes(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (int, error)
}

// Read-through cache of travel-time estimates keyed by (from, to, mode).
// A miss is reported via ok=false, not an error; cache errors are
// treated as misses by the estimator.
type TravelCache interface {
	Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (minutes int, ok bool, err error)
	Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, minutes int) error
}
