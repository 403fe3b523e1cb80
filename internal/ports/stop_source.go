package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a boundary for retrieving candidate stops for a destination.
// Implementations include the persistent catalog and the LLM generator.
// An empty result is not an error; the planning service decides how to
// react to it.
type StopSource interface {
	// Retrieve candidate stops for the destination. Interests may steer
	// generation-backed sources; catalog sources ignore them.
	ListStops(ctx context.Context, destination string, interests []string) ([]domain.Stop, error)
}
