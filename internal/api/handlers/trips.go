package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

type TripsHandler struct {
	Repo ports.TripRepository
}

func NewTripsHandler(repo ports.TripRepository) *TripsHandler {
	return &TripsHandler{Repo: repo}
}

// ServeHTTP routes /trips and /trips/{id}. The mux strips nothing, so
// the id is parsed from the path here.
func (h *TripsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(r.URL.Path)

	switch {
	case !ok && r.Method == http.MethodPost:
		h.create(w, r)
	case !ok && r.Method == http.MethodGet:
		h.list(w, r)
	case ok && r.Method == http.MethodGet:
		h.get(w, r, id)
	case ok && r.Method == http.MethodPut:
		h.update(w, r, id)
	case ok && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// tripID extracts the id segment from /trips/{id}. It reports false for
// the bare collection path /trips.
func tripID(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/trips")
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}

func (h *TripsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	status := req.Status
	if status == "" {
		status = domain.TripStatusPlanned
	}
	if !domain.ValidTripStatus(status) {
		writeError(w, r, http.StatusBadRequest, "status must be planned, completed or cancelled")
		return
	}

	now := time.Now().UTC()
	trip := &domain.Trip{
		ID:          uuid.NewString(),
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
		Interests:   req.Interests,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Itinerary != nil {
		trip.Itinerary = itineraryFromDTO(*req.Itinerary)
	}

	if err := h.Repo.CreateTrip(r.Context(), trip); err != nil {
		log.Printf("create trip failed: destination=%q err=%v", trip.Destination, err)
		writeError(w, r, http.StatusInternalServerError, "failed to create trip")
		return
	}

	writeJSON(w, r, http.StatusCreated, tripToDTO(trip))
}

func (h *TripsHandler) list(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list trips")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripToDTO(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	trip, err := h.Repo.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("get trip failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "failed to get trip")
		return
	}

	writeJSON(w, r, http.StatusOK, tripToDTO(trip))
}

func (h *TripsHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	trip, err := h.Repo.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("get trip failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "failed to update trip")
		return
	}

	var req dto.TripRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if dest := strings.TrimSpace(req.Destination); dest != "" {
		trip.Destination = dest
	}
	if req.StartDate != "" {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		trip.EndDate = req.EndDate
	}
	if req.Travelers != 0 {
		trip.Travelers = req.Travelers
	}
	if req.Interests != nil {
		trip.Interests = req.Interests
	}
	if req.Status != "" {
		if !domain.ValidTripStatus(req.Status) {
			writeError(w, r, http.StatusBadRequest, "status must be planned, completed or cancelled")
			return
		}
		trip.Status = req.Status
	}
	if req.Itinerary != nil {
		trip.Itinerary = itineraryFromDTO(*req.Itinerary)
	}
	trip.UpdatedAt = time.Now().UTC()

	if err := h.Repo.UpdateTrip(r.Context(), trip); err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("update trip failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "failed to update trip")
		return
	}

	writeJSON(w, r, http.StatusOK, tripToDTO(trip))
}

func (h *TripsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteTrip(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("delete trip failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "failed to delete trip")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteTripResponse{Message: "trip deleted", ID: id})
}
