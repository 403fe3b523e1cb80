package services

import (
	"sort"
	"strings"

	"tour-planner-service/internal/domain"
)

// RankStops orders candidate stops by preference score, descending.
//
// The sort is stable: stops with equal scores keep the order the stop
// source produced them in. Stop fields are never mutated; ranking only
// attaches the score and fixes the visiting order for partitioning.
func RankStops(stops []domain.Stop, interests []string) []domain.RankedStop {
	ranked := make([]domain.RankedStop, 0, len(stops))
	for _, s := range stops {
		ranked = append(ranked, domain.RankedStop{
			Stop:  s,
			Score: preferenceScore(s, interests),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// preferenceScore awards 10 points per interest found in the stop's
// category tags (case-insensitive substring match) and subtracts the
// visit duration in hours, so shorter stops win ties on interest.
func preferenceScore(s domain.Stop, interests []string) float64 {
	cats := strings.ToLower(s.Category)

	score := 0.0
	for _, interest := range interests {
		if strings.Contains(cats, strings.ToLower(interest)) {
			score += 10
		}
	}

	return score - float64(s.DurationMinutes)/60.0
}
