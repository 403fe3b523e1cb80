package services

import (
	"testing"

	"tour-planner-service/internal/domain"
)

func TestRankStopsOrdersByScore(t *testing.T) {
	stops := []domain.Stop{
		{Name: "Park", Category: "nature,parks", DurationMinutes: 60},
		{Name: "Museum", Category: "art,museums", DurationMinutes: 120},
		{Name: "Gallery", Category: "art", DurationMinutes: 60},
	}

	ranked := RankStops(stops, []string{"art"})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked stops, got %d", len(ranked))
	}
	if ranked[0].Name != "Gallery" {
		t.Fatalf("expected Gallery first (10-1=9), got %q", ranked[0].Name)
	}
	if ranked[1].Name != "Museum" {
		t.Fatalf("expected Museum second (10-2=8), got %q", ranked[1].Name)
	}
	if ranked[2].Name != "Park" {
		t.Fatalf("expected Park last (0-1=-1), got %q", ranked[2].Name)
	}
}

func TestRankStopsMatchesCaseInsensitive(t *testing.T) {
	stops := []domain.Stop{
		{Name: "Cathedral", Category: "History,Architecture", DurationMinutes: 60},
		{Name: "Market", Category: "food", DurationMinutes: 60},
	}

	ranked := RankStops(stops, []string{"ARCHITECTURE"})

	if ranked[0].Name != "Cathedral" {
		t.Fatalf("expected Cathedral first, got %q", ranked[0].Name)
	}
	if ranked[0].Score != 9 {
		t.Fatalf("Cathedral score = %v, want 9", ranked[0].Score)
	}
}

func TestRankStopsStableOnTies(t *testing.T) {
	stops := []domain.Stop{
		{Name: "A", Category: "food", DurationMinutes: 90},
		{Name: "B", Category: "food", DurationMinutes: 90},
		{Name: "C", Category: "food", DurationMinutes: 90},
	}

	ranked := RankStops(stops, nil)

	for i, want := range []string{"A", "B", "C"} {
		if ranked[i].Name != want {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, ranked[i].Name, want)
		}
	}
}

func TestRankStopsNoInterestsUsesDurationPenalty(t *testing.T) {
	stops := []domain.Stop{
		{Name: "Long", Category: "art", DurationMinutes: 240},
		{Name: "Short", Category: "nature", DurationMinutes: 30},
	}

	ranked := RankStops(stops, nil)

	if ranked[0].Name != "Short" {
		t.Fatalf("expected shortest stop first without interests, got %q", ranked[0].Name)
	}
}

func TestRankStopsDoesNotMutateInput(t *testing.T) {
	stops := []domain.Stop{
		{Name: "A", Category: "art", DurationMinutes: 120, Coord: domain.Coordinates{Lat: 1, Lng: 2}},
	}

	ranked := RankStops(stops, []string{"art"})

	if ranked[0].DurationMinutes != 120 || ranked[0].Category != "art" || ranked[0].Coord.Lat != 1 {
		t.Fatalf("ranked stop fields differ from input: %+v", ranked[0])
	}
}
