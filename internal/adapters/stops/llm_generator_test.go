package stops

import (
	"testing"
)

func TestParseStopsJSONPlainArray(t *testing.T) {
	content := `[{"name":"Louvre Museum","category":"art,museums","desc":"World-famous art museum.","duration_mins":120,"lat":48.8606,"lng":2.3376}]`

	stops, err := ParseStopsJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(stops))
	}

	s := stops[0]
	if s.Name != "Louvre Museum" || s.Category != "art,museums" || s.DurationMinutes != 120 {
		t.Fatalf("stop fields wrong: %+v", s)
	}
	if s.Coord.Lat != 48.8606 || s.Coord.Lng != 2.3376 {
		t.Fatalf("coordinates wrong: %+v", s.Coord)
	}
}

func TestParseStopsJSONStripsFencesAndProse(t *testing.T) {
	content := "Here are the results:\n```json\n[{\"name\":\"Big Ben\",\"category\":\"landmarks\",\"duration_mins\":60,\"lat\":51.4994,\"lng\":-0.1245}]\n```\nEnjoy your trip!"

	stops, err := ParseStopsJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) != 1 || stops[0].Name != "Big Ben" {
		t.Fatalf("expected Big Ben, got %+v", stops)
	}
}

func TestParseStopsJSONDefaultsMissingFields(t *testing.T) {
	content := `[{"name":"Mystery Spot"}]`

	stops, err := ParseStopsJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := stops[0]
	if s.DurationMinutes != 60 {
		t.Fatalf("duration defaulted to %d, want 60", s.DurationMinutes)
	}
	if s.Category != "" || s.Description != "" {
		t.Fatalf("expected empty optional fields, got %+v", s)
	}
	if s.Coord.Lat != 0 || s.Coord.Lng != 0 {
		t.Fatalf("expected zero coordinates, got %+v", s.Coord)
	}
}

func TestParseStopsJSONDropsNamelessEntries(t *testing.T) {
	content := `[{"name":"Real Place","duration_mins":60},{"category":"art"},{"name":"  "}]`

	stops, err := ParseStopsJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) != 1 || stops[0].Name != "Real Place" {
		t.Fatalf("expected only Real Place, got %+v", stops)
	}
}

func TestParseStopsJSONRejectsNonArray(t *testing.T) {
	if _, err := ParseStopsJSON("Sorry, I cannot help with that."); err == nil {
		t.Fatal("expected error for response without a JSON array")
	}
	if _, err := ParseStopsJSON("[{broken json]"); err == nil {
		t.Fatal("expected error for malformed array")
	}
}
