package domain

// One calendar day of an itinerary: a contiguous slice of the globally
// ranked stop sequence. Stops are never reordered or moved between
// non-adjacent days, so concatenating all days reproduces the ranked order.
type Day struct {
	Stops []ScheduledStop
}

// Represents the planned itinerary for a single destination.
// An Itinerary is the output of the day partitioner and is immutable
// planning data with no side effects. Days are 1-indexed for display.
type Itinerary struct {
	Destination string
	Days        []Day
}

// TotalStops counts scheduled stops across all days.
func (it *Itinerary) TotalStops() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Stops)
	}
	return n
}
