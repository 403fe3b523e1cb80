package dto

type StopResponse struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"desc"`
	DurationMinutes int     `json:"duration_mins"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
}

type ListStopsResponse struct {
	Destination string         `json:"destination"`
	Stops       []StopResponse `json:"stops"`
}
