package domain

// Represents a single candidate point of interest for a destination.
// A Stop is immutable once produced by a stop source; the planner only
// reads it and attaches scheduling data in ScheduledStop.
type Stop struct {
	Name            string
	Category        string
	Description     string
	DurationMinutes int
	Coord           Coordinates
}

// A Stop together with its preference score. Higher scores are
// visited earlier; the ranked sequence fixes stop order for the
// whole itinerary before day partitioning.
type RankedStop struct {
	Stop
	Score float64
}

// A RankedStop placed into a concrete day with wall-clock times.
//
// StartMinutes/EndMinutes are offsets from midnight. The scheduled
// duration may be trimmed below the requested one so the stop ends
// inside the day boundary, but never below 30 minutes.
type ScheduledStop struct {
	RankedStop
	TravelFromPrevMinutes   int
	AdjustedDurationMinutes int
	StartMinutes            int
	EndMinutes              int
	StartTime               string
	EndTime                 string
}
