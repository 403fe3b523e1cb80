package handlers

import (
	"log"
	"net/http"
	"strings"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/ports"
)

type StopsHandler struct {
	Catalog ports.StopSource
}

func NewStopsHandler(catalog ports.StopSource) *StopsHandler {
	return &StopsHandler{Catalog: catalog}
}

// ServeHTTP handles GET /stops?destination=<city>.
func (h *StopsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	stops, err := h.Catalog.ListStops(r.Context(), destination, nil)
	if err != nil {
		log.Printf("list stops failed: destination=%q err=%v", destination, err)
		writeError(w, r, http.StatusInternalServerError, "failed to list stops")
		return
	}

	res := dto.ListStopsResponse{
		Destination: destination,
		Stops:       make([]dto.StopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, stopToDTO(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
