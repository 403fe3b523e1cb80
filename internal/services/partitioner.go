package services

import (
	"context"
	"fmt"

	"tour-planner-service/internal/domain"
)

// Scheduled visit durations are never trimmed below this.
const minTrimmedMinutes = 30

const (
	defaultDayHours     = 8
	defaultDayStartHour = 9
)

// PartitionOptions control the daily time budget and travel mode.
// Zero values select the defaults (8-hour days starting at 09:00,
// walking travel).
type PartitionOptions struct {
	DayHours     int
	DayStartHour int
	Mode         domain.TravelMode
}

func (o PartitionOptions) withDefaults() PartitionOptions {
	if o.DayHours <= 0 {
		o.DayHours = defaultDayHours
	}
	if o.DayStartHour <= 0 {
		o.DayStartHour = defaultDayStartHour
	}
	if o.Mode == "" {
		o.Mode = domain.ModeWalking
	}
	return o
}

// dayAccumulator is the fold state of the partitioning pass.
type dayAccumulator struct {
	days             []domain.Day
	current          []domain.ScheduledStop
	remainingMinutes int
}

// newDayDecision carries everything the new-day predicate needs about
// the accumulator and the next candidate stop.
type newDayDecision struct {
	currentStops     int // stops already in the open day
	remainingMinutes int // minute budget left in the open day
	required         int // travel + duration of the candidate
	startMinutes     int // candidate start offset if placed in the open day
	durationMinutes  int
	dayEndMinutes    int
	minutesPerDay    int
	estimatedDays    int
	daysClosed       int
	totalStops       int
	stopsRemaining   int // ranked stops after the candidate
}

// shouldStartNewDay decides whether the open day must be closed before
// placing the candidate stop. Rules are evaluated in order, first true
// wins; an empty day is never closed.
//
// The balance rules exist because naive greedy filling front-loads early
// days to capacity and leaves a sparse final day. When the total time
// budget suggests multiple days, a day holding well over the average
// share of stops, or one nearly out of budget with many stops left,
// hands off to a fresh day early. The hard per-day ceiling is never
// relaxed by these rules.
func shouldStartNewDay(d newDayDecision) bool {
	if d.currentStops == 0 {
		return false
	}

	if d.remainingMinutes < d.required {
		return true
	}
	if d.startMinutes+d.durationMinutes > d.dayEndMinutes {
		return true
	}

	remainingDays := d.estimatedDays - d.daysClosed - 1
	if remainingDays > 0 {
		avgPerDay := float64(d.totalStops) / float64(d.estimatedDays)
		if float64(d.currentStops) > avgPerDay*1.3 && d.stopsRemaining >= remainingDays {
			return true
		}
		if float64(d.remainingMinutes) < float64(d.minutesPerDay)*0.25 && d.stopsRemaining > remainingDays*2 {
			return true
		}
	}

	return false
}

// estimateDayCount sizes the balancing heuristic: the total of travel
// and visit time over the ranked sequence, in day-budget units, rounded
// half up and floored at one. Not a hard limit on the day count.
func estimateDayCount(ctx context.Context, ranked []domain.RankedStop, opts PartitionOptions, est Estimator) int {
	total := 0
	for i, rs := range ranked {
		travel := 0
		if i > 0 {
			travel = est.Estimate(ctx, ranked[i-1].Coord, rs.Coord, opts.Mode)
		}
		total += travel + rs.DurationMinutes
	}

	days := int(float64(total)/float64(opts.DayHours*60) + 0.5)
	if days < 1 {
		days = 1
	}
	return days
}

// PartitionDays splits the ranked stop sequence into day-sized blocks
// and assigns wall-clock start/end times to every stop.
//
// The pass is a single fold over the ranked order: each stop either
// extends the open day or closes it and opens the next one, so every
// day is a contiguous slice of the ranked sequence and concatenating
// the days reproduces it exactly. A stop that opens a day starts at the
// day start hour with zero travel; one that would end past the day
// boundary is trimmed, never below 30 minutes. Days that never receive
// a stop are never emitted.
func PartitionDays(ctx context.Context, ranked []domain.RankedStop, opts PartitionOptions, est Estimator) []domain.Day {
	opts = opts.withDefaults()

	if len(ranked) == 0 {
		return nil
	}

	minutesPerDay := opts.DayHours * 60
	dayStartMinutes := opts.DayStartHour * 60
	dayEndMinutes := (opts.DayStartHour + opts.DayHours) * 60

	estimatedDays := estimateDayCount(ctx, ranked, opts, est)

	acc := dayAccumulator{remainingMinutes: minutesPerDay}

	for idx, rs := range ranked {
		duration := rs.DurationMinutes

		// Travel is measured from the last stop actually placed in the
		// open day, not the previous ranked stop.
		travel := 0
		startMinutes := dayStartMinutes
		if len(acc.current) > 0 {
			last := acc.current[len(acc.current)-1]
			travel = est.Estimate(ctx, last.Coord, rs.Coord, opts.Mode)
			startMinutes = last.EndMinutes + travel
		}

		decision := newDayDecision{
			currentStops:     len(acc.current),
			remainingMinutes: acc.remainingMinutes,
			required:         travel + duration,
			startMinutes:     startMinutes,
			durationMinutes:  duration,
			dayEndMinutes:    dayEndMinutes,
			minutesPerDay:    minutesPerDay,
			estimatedDays:    estimatedDays,
			daysClosed:       len(acc.days),
			totalStops:       len(ranked),
			stopsRemaining:   len(ranked) - idx - 1,
		}

		if shouldStartNewDay(decision) {
			acc.days = append(acc.days, domain.Day{Stops: acc.current})
			acc.current = nil
			acc.remainingMinutes = minutesPerDay

			// The stop now opens a fresh day.
			travel = 0
			startMinutes = dayStartMinutes
		}

		adjusted := duration
		endMinutes := startMinutes + duration
		if endMinutes > dayEndMinutes {
			adjusted = dayEndMinutes - startMinutes
			if adjusted < minTrimmedMinutes {
				adjusted = minTrimmedMinutes
			}
			endMinutes = startMinutes + adjusted
		}

		acc.current = append(acc.current, domain.ScheduledStop{
			RankedStop:              rs,
			TravelFromPrevMinutes:   travel,
			AdjustedDurationMinutes: adjusted,
			StartMinutes:            startMinutes,
			EndMinutes:              endMinutes,
			StartTime:               clockString(startMinutes),
			EndTime:                 clockString(endMinutes),
		})
		acc.remainingMinutes -= travel + adjusted
	}

	if len(acc.current) > 0 {
		acc.days = append(acc.days, domain.Day{Stops: acc.current})
	}

	return acc.days
}

// clockString renders a minute offset from midnight as HH:MM, reducing
// the hour modulo 24. Callers that must not cross midnight enforce that
// before partitioning; see the day_hours bound at the API boundary.
func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}
