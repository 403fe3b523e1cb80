package dto

import "time"

type TripRequest struct {
	Destination string             `json:"destination"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Travelers   int                `json:"travelers"`
	Interests   []string           `json:"interests"`
	Status      string             `json:"status"`
	Itinerary   *ItineraryResponse `json:"itinerary"`
}

type TripResponse struct {
	ID          string            `json:"id"`
	Destination string            `json:"destination"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Travelers   int               `json:"travelers"`
	Interests   []string          `json:"interests"`
	Status      string            `json:"status"`
	Itinerary   ItineraryResponse `json:"itinerary"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

type DeleteTripResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
