package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/travel"
	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

type stubCatalog struct {
	stops map[string][]domain.Stop
}

func (c *stubCatalog) ListStops(ctx context.Context, destination string, interests []string) ([]domain.Stop, error) {
	return c.stops[strings.ToLower(destination)], nil
}

type memoryTripRepo struct {
	trips map[string]*domain.Trip
}

func newMemoryTripRepo() *memoryTripRepo {
	return &memoryTripRepo{trips: make(map[string]*domain.Trip)}
}

func (r *memoryTripRepo) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	cp := *trip
	r.trips[trip.ID] = &cp
	return nil
}

func (r *memoryTripRepo) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	out := make([]*domain.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryTripRepo) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, ports.ErrTripNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memoryTripRepo) UpdateTrip(ctx context.Context, trip *domain.Trip) error {
	if _, ok := r.trips[trip.ID]; !ok {
		return ports.ErrTripNotFound
	}
	cp := *trip
	r.trips[trip.ID] = &cp
	return nil
}

func (r *memoryTripRepo) DeleteTrip(ctx context.Context, id string) error {
	if _, ok := r.trips[id]; !ok {
		return ports.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

var (
	museumCoord = domain.Coordinates{Lat: 48.8606, Lng: 2.3376}
	parkCoord   = domain.Coordinates{Lat: 48.8462, Lng: 2.3372}
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := &stubCatalog{stops: map[string][]domain.Stop{
		"paris": {
			{Name: "Museum", Category: "art, museums", DurationMinutes: 120, Coord: museumCoord},
			{Name: "Park", Category: "nature", DurationMinutes: 60, Coord: parkCoord},
		},
	}}

	lookup := travel.NewMockLookup([]travel.MockPair{
		{From: museumCoord, To: parkCoord, Minutes: 30},
		{From: parkCoord, To: museumCoord, Minutes: 30},
	})
	estimator := services.NewTravelEstimator(lookup, cache.NewMemoryTravelCache(0, 0))
	planner := services.NewPlanService(catalog, nil, estimator)

	srv := httptest.NewServer(NewRouter(planner, catalog, newMemoryTripRepo()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Request-ID"); got == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}

	body := decodeBody[map[string]string](t, resp)
	if body["status"] != "ok" {
		t.Fatalf("status field = %q, want ok", body["status"])
	}
}

func TestPlanEndpointBuildsItinerary(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/plan", dto.PlanTripRequest{
		Destination: "Paris",
		Interests:   []string{"art"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	it := decodeBody[dto.ItineraryResponse](t, resp)
	if it.Destination != "Paris" {
		t.Fatalf("destination = %q, want Paris", it.Destination)
	}
	if len(it.Days) != 1 {
		t.Fatalf("days = %d, want 1", len(it.Days))
	}

	stops := it.Days[0].Stops
	if len(stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(stops))
	}
	if stops[0].Name != "Museum" || stops[1].Name != "Park" {
		t.Fatalf("stop order wrong: %q then %q", stops[0].Name, stops[1].Name)
	}
	if stops[0].StartTime != "09:00" || stops[0].EndTime != "11:00" {
		t.Fatalf("first stop scheduled %s-%s, want 09:00-11:00", stops[0].StartTime, stops[0].EndTime)
	}

	// Travel time must come from the configured lookup, not the
	// distance fallback.
	if stops[1].TravelFromPrevMins != 30 {
		t.Fatalf("travel_from_prev_mins = %d, want 30", stops[1].TravelFromPrevMins)
	}
	if stops[1].StartTime != "11:30" || stops[1].EndTime != "12:30" {
		t.Fatalf("second stop scheduled %s-%s, want 11:30-12:30", stops[1].StartTime, stops[1].EndTime)
	}
}

func TestPlanEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		req  dto.PlanTripRequest
		want int
	}{
		{"missing destination", dto.PlanTripRequest{DayHours: 8}, http.StatusBadRequest},
		{"day hours too large", dto.PlanTripRequest{Destination: "Paris", DayHours: 16}, http.StatusBadRequest},
		{"negative day hours", dto.PlanTripRequest{Destination: "Paris", DayHours: -1}, http.StatusBadRequest},
		{"bad mode", dto.PlanTripRequest{Destination: "Paris", Mode: "teleport"}, http.StatusBadRequest},
		{"unknown destination", dto.PlanTripRequest{Destination: "Atlantis"}, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/plan", tc.req)
			resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestPlanEndpointRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/plan", "application/json",
		strings.NewReader(`{"destination":"Paris","budget":9000}`))
	if err != nil {
		t.Fatalf("POST /plan: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStopsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/stops?destination=Paris")
	if err != nil {
		t.Fatalf("GET /stops: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[dto.ListStopsResponse](t, resp)
	if len(body.Stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(body.Stops))
	}

	resp, err = http.Get(srv.URL + "/stops")
	if err != nil {
		t.Fatalf("GET /stops without destination: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTripsLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/trips", dto.TripRequest{
		Destination: "Paris",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-03",
		Travelers:   2,
		Interests:   []string{"art"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decodeBody[dto.TripResponse](t, resp)
	if created.ID == "" {
		t.Fatal("created trip has empty id")
	}
	if created.Status != "planned" {
		t.Fatalf("default status = %q, want planned", created.Status)
	}

	resp, err := http.Get(srv.URL + "/trips/" + created.ID)
	if err != nil {
		t.Fatalf("GET trip: %v", err)
	}
	got := decodeBody[dto.TripResponse](t, resp)
	if got.Destination != "Paris" || got.Travelers != 2 {
		t.Fatalf("fetched trip wrong: %+v", got)
	}

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/trips/"+created.ID,
		strings.NewReader(`{"status":"completed"}`))
	if err != nil {
		t.Fatalf("build PUT request: %v", err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT trip: %v", err)
	}
	updated := decodeBody[dto.TripResponse](t, resp)
	if updated.Status != "completed" {
		t.Fatalf("updated status = %q, want completed", updated.Status)
	}

	resp, err = http.Get(srv.URL + "/trips")
	if err != nil {
		t.Fatalf("GET /trips: %v", err)
	}
	list := decodeBody[dto.ListTripsResponse](t, resp)
	if len(list.Trips) != 1 {
		t.Fatalf("trips = %d, want 1", len(list.Trips))
	}

	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/trips/"+created.ID, nil)
	if err != nil {
		t.Fatalf("build DELETE request: %v", err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE trip: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/trips/" + created.ID)
	if err != nil {
		t.Fatalf("GET deleted trip: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want 404", resp.StatusCode)
	}
}

func TestTripsRejectsBadStatus(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/trips", dto.TripRequest{
		Destination: "Paris",
		Status:      "daydreaming",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
