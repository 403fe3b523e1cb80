package travel

import (
	"context"
	"fmt"

	"tour-planner-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Minutes  int
}

// MockLookup serves fixed travel times for known coordinate pairs.
type MockLookup struct {
	m map[string]int
}

func NewMockLookup(pairs []MockPair) *MockLookup {
	m := make(map[string]int, len(pairs))
	for _, p := range pairs {
		m[coordParam(p.From)+"|"+coordParam(p.To)] = p.Minutes
	}
	return &MockLookup{m: m}
}

func (l *MockLookup) LookupMinutes(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (int, error) {
	minutes, ok := l.m[coordParam(from)+"|"+coordParam(to)]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", coordParam(from), coordParam(to))
	}

	return minutes, nil
}
