package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// Returned when no candidate stops exist for a destination, after the
// generator fallback (if configured) has also come up empty.
var ErrNoStops = errors.New("no candidate stops found")

type PlanTripRequest struct {
	Destination string
	Interests   []string
	DayHours    int
	Mode        domain.TravelMode
}

// PlanService builds itineraries: candidate stops from the catalog
// (falling back to the generator), ranked by preference, partitioned
// into days. Dependencies are injected; the service holds no state of
// its own, so concurrent planning calls need no coordination.
type PlanService struct {
	Catalog   ports.StopSource
	Generator ports.StopSource // optional, used when the catalog has no stops
	Estimator Estimator
}

func NewPlanService(catalog ports.StopSource, generator ports.StopSource, est Estimator) *PlanService {
	return &PlanService{Catalog: catalog, Generator: generator, Estimator: est}
}

func (p *PlanService) PlanTrip(ctx context.Context, req PlanTripRequest) (*domain.Itinerary, error) {
	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		return nil, errors.New("plan trip: destination must be non-empty")
	}

	stops, err := p.Catalog.ListStops(ctx, dest, req.Interests)
	if err != nil {
		return nil, fmt.Errorf("plan trip: list stops for %q: %w", dest, err)
	}

	if len(stops) == 0 && p.Generator != nil {
		log.Printf("no catalog stops destination=%q, generating", dest)
		stops, err = p.Generator.ListStops(ctx, dest, req.Interests)
		if err != nil {
			return nil, fmt.Errorf("plan trip: generate stops for %q: %w", dest, err)
		}
	}

	if len(stops) == 0 {
		return nil, fmt.Errorf("plan trip: %w for destination %q", ErrNoStops, dest)
	}

	ranked := RankStops(stops, req.Interests)
	days := PartitionDays(ctx, ranked, PartitionOptions{
		DayHours: req.DayHours,
		Mode:     req.Mode,
	}, p.Estimator)

	return &domain.Itinerary{Destination: dest, Days: days}, nil
}
