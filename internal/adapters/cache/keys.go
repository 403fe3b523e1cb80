package cache

import (
	"strconv"

	"tour-planner-service/internal/domain"
)

// coordKey renders coordinates as a stable "lat,lng" cache key.
func coordKey(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// pairKey keys a cached estimate by (from, to, mode).
func pairKey(from, to domain.Coordinates, mode domain.TravelMode) string {
	return "travel:" + string(mode) + ":" + coordKey(from) + "|" + coordKey(to)
}
