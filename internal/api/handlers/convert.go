package handlers

import (
	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
)

func itineraryToDTO(it *domain.Itinerary) dto.ItineraryResponse {
	days := make([]dto.DayResponse, 0, len(it.Days))
	for i, d := range it.Days {
		stops := make([]dto.ScheduledStopResponse, 0, len(d.Stops))
		for _, s := range d.Stops {
			stops = append(stops, dto.ScheduledStopResponse{
				Name:               s.Name,
				Category:           s.Category,
				Description:        s.Description,
				DurationMinutes:    s.AdjustedDurationMinutes,
				TravelFromPrevMins: s.TravelFromPrevMinutes,
				Lat:                s.Coord.Lat,
				Lng:                s.Coord.Lng,
				StartTime:          s.StartTime,
				EndTime:            s.EndTime,
				StartTimeMinutes:   s.StartMinutes,
				EndTimeMinutes:     s.EndMinutes,
			})
		}
		days = append(days, dto.DayResponse{Day: i + 1, Stops: stops})
	}

	return dto.ItineraryResponse{Destination: it.Destination, Days: days}
}

func itineraryFromDTO(res dto.ItineraryResponse) domain.Itinerary {
	days := make([]domain.Day, 0, len(res.Days))
	for _, d := range res.Days {
		stops := make([]domain.ScheduledStop, 0, len(d.Stops))
		for _, s := range d.Stops {
			stops = append(stops, domain.ScheduledStop{
				RankedStop: domain.RankedStop{
					Stop: domain.Stop{
						Name:            s.Name,
						Category:        s.Category,
						Description:     s.Description,
						DurationMinutes: s.DurationMinutes,
						Coord:           domain.Coordinates{Lat: s.Lat, Lng: s.Lng},
					},
				},
				TravelFromPrevMinutes:   s.TravelFromPrevMins,
				AdjustedDurationMinutes: s.DurationMinutes,
				StartMinutes:            s.StartTimeMinutes,
				EndMinutes:              s.EndTimeMinutes,
				StartTime:               s.StartTime,
				EndTime:                 s.EndTime,
			})
		}
		days = append(days, domain.Day{Stops: stops})
	}

	return domain.Itinerary{Destination: res.Destination, Days: days}
}

func stopToDTO(s domain.Stop) dto.StopResponse {
	return dto.StopResponse{
		Name:            s.Name,
		Category:        s.Category,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Lat:             s.Coord.Lat,
		Lng:             s.Coord.Lng,
	}
}

func tripToDTO(t *domain.Trip) dto.TripResponse {
	interests := t.Interests
	if interests == nil {
		interests = []string{}
	}

	return dto.TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Travelers:   t.Travelers,
		Interests:   interests,
		Status:      t.Status,
		Itinerary:   itineraryToDTO(&t.Itinerary),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
