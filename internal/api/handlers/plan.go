package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/services"
)

// TripPlanner is the slice of the planning service the plan endpoint needs.
type TripPlanner interface {
	PlanTrip(ctx context.Context, req services.PlanTripRequest) (*domain.Itinerary, error)
}

const maxDayHours = 15

type PlanHandler struct {
	Planner TripPlanner
}

func NewPlanHandler(planner TripPlanner) *PlanHandler {
	return &PlanHandler{Planner: planner}
}

// ServeHTTP handles POST /plan.
func (h *PlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTripRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}
	if req.DayHours != 0 && (req.DayHours < 1 || req.DayHours > maxDayHours) {
		writeError(w, r, http.StatusBadRequest, "day_hours must be between 1 and 15")
		return
	}

	mode, ok := domain.ParseTravelMode(req.Mode)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "mode must be walking, transit or driving")
		return
	}

	itinerary, err := h.Planner.PlanTrip(r.Context(), services.PlanTripRequest{
		Destination: req.Destination,
		Interests:   req.Interests,
		DayHours:    req.DayHours,
		Mode:        mode,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoStops) {
			writeError(w, r, http.StatusUnprocessableEntity, "no stops found for destination")
			return
		}
		log.Printf("plan trip failed: destination=%q err=%v", req.Destination, err)
		writeError(w, r, http.StatusInternalServerError, "failed to plan trip")
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryToDTO(itinerary))
}
