package domain

import "time"

// Trip lifecycle states.
const (
	TripStatusPlanned   = "planned"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

// A saved trip: a planned itinerary plus the request details it was
// built from. Trips are persisted so a plan can be revisited or updated
// after the planning call that produced it.
type Trip struct {
	ID          string
	Destination string
	StartDate   string
	EndDate     string
	Travelers   int
	Interests   []string
	Status      string
	Itinerary   Itinerary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidTripStatus(s string) bool {
	switch s {
	case TripStatusPlanned, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}
