package domain

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Travel mode used when estimating time between two stops.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeTransit TravelMode = "transit"
	ModeDriving TravelMode = "driving"
)

// ParseTravelMode maps a request string onto a known mode.
// An empty string selects the walking default; anything else is rejected.
func ParseTravelMode(s string) (TravelMode, bool) {
	switch TravelMode(s) {
	case ModeWalking, ModeTransit, ModeDriving:
		return TravelMode(s), true
	case "":
		return ModeWalking, true
	}
	return ModeWalking, false
}
