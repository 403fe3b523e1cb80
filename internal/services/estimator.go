package services

import (
	"context"
	"log"
	"math"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

const (
	earthRadiusKm = 6371.0

	// Floor applied to every estimate: models fixed overhead for
	// same-location or adjacent stops.
	minTravelMinutes = 5
)

// Estimator is the travel-time contract consumed by the day partitioner.
type Estimator interface {
	// Estimate travel time in whole minutes between two coordinates.
	// Never fails; implementations degrade internally.
	Estimate(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) int
}

// TravelEstimator estimates travel time between two stops.
//
// Resolution order: read-through cache, external lookup, geometric
// fallback. Lookup and cache failures are logged and degrade to the
// next step; Estimate never returns an error. With no lookup and no
// cache configured it is a pure function of the coordinates and mode.
type TravelEstimator struct {
	Lookup ports.TravelLookup // optional external distance matrix
	Cache  ports.TravelCache  // optional, keyed (from, to, mode)
}

func NewTravelEstimator(lookup ports.TravelLookup, cache ports.TravelCache) *TravelEstimator {
	return &TravelEstimator{Lookup: lookup, Cache: cache}
}

func (e *TravelEstimator) Estimate(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) int {
	if e.Cache != nil {
		minutes, ok, err := e.Cache.Get(ctx, from, to, mode)
		if err != nil {
			log.Printf("travel cache read failed (treating as miss): %v", err)
		} else if ok {
			return minutes
		}
	}

	minutes := e.resolve(ctx, from, to, mode)

	if e.Cache != nil {
		if err := e.Cache.Put(ctx, from, to, mode, minutes); err != nil {
			log.Printf("travel cache write failed: %v", err)
		}
	}

	return minutes
}

// resolve prefers the external lookup and makes the fallback decision
// explicit: any lookup error selects the geometric estimate.
func (e *TravelEstimator) resolve(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) int {
	if e.Lookup != nil {
		minutes, err := e.Lookup.LookupMinutes(ctx, from, to, mode)
		if err == nil {
			return clampMinutes(minutes)
		}
		log.Printf("travel lookup failed mode=%s (falling back to geometric estimate): %v", mode, err)
	}

	return GeometricMinutes(from, to, mode)
}

// GeometricMinutes estimates travel time from great-circle distance and
// a fixed speed profile per mode. Symmetric in its coordinate arguments.
func GeometricMinutes(from, to domain.Coordinates, mode domain.TravelMode) int {
	distKm := HaversineKm(from, to)
	minutes := int((distKm / speedKmh(mode)) * 60)
	return clampMinutes(minutes)
}

// HaversineKm returns the great-circle distance between two coordinates
// on a spherical Earth of radius 6371 km.
func HaversineKm(a, b domain.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func speedKmh(mode domain.TravelMode) float64 {
	switch mode {
	case domain.ModeWalking:
		return 5
	case domain.ModeTransit:
		return 20
	case domain.ModeDriving:
		return 40
	}
	return 20
}

func clampMinutes(m int) int {
	if m < minTravelMinutes {
		return minTravelMinutes
	}
	return m
}
