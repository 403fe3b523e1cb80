package api

import (
	"net/http"

	"tour-planner-service/internal/api/handlers"
	"tour-planner-service/internal/ports"
)

// NewRouter wires the HTTP surface. Dependencies come in through ports
// so the router stays ignorant of storage and provider choices.
func NewRouter(planner handlers.TripPlanner, catalog ports.StopSource, trips ports.TripRepository) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/plan", handlers.NewPlanHandler(planner))
	mux.Handle("/stops", handlers.NewStopsHandler(catalog))

	tripsHandler := handlers.NewTripsHandler(trips)
	mux.Handle("/trips", tripsHandler)
	mux.Handle("/trips/", tripsHandler)

	return loggingMiddleware(mux)
}
