package dto

type PlanTripRequest struct {
	Destination string   `json:"destination"`
	Interests   []string `json:"interests"`
	DayHours    int      `json:"day_hours"`
	Mode        string   `json:"mode"`
	Travelers   int      `json:"travelers"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

type ScheduledStopResponse struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Description         string  `json:"desc"`
	DurationMinutes     int     `json:"duration_mins"`
	TravelFromPrevMins  int     `json:"travel_from_prev_mins"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	StartTimeMinutes    int     `json:"start_time_minutes"`
	EndTimeMinutes      int     `json:"end_time_minutes"`
}

type DayResponse struct {
	Day   int                     `json:"day"`
	Stops []ScheduledStopResponse `json:"stops"`
}

type ItineraryResponse struct {
	Destination string        `json:"destination"`
	Days        []DayResponse `json:"days"`
}
