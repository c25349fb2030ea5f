package progress

import (
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

// ComputeStreaks emits one point per log, oldest first. A streak only
// continues when the previous log in the sorted history is exactly one day
// earlier and achieved; days without a log produce no point.
func ComputeStreaks(logs []*domain.GoalLog) []domain.StreakPoint {
	sorted := sortedCopy(logs)
	points := make([]domain.StreakPoint, 0, len(sorted))

	streak := 0
	for i, l := range sorted {
		switch {
		case !l.Achieved():
			streak = 0
		case i > 0 && sorted[i-1].Achieved() && l.Date.DaysSince(sorted[i-1].Date) == 1:
			streak++
		default:
			streak = 1
		}
		points = append(points, domain.StreakPoint{Date: l.Date, Streak: streak})
	}

	return points
}

// SummarizeStreaks returns the streak at the last point and the longest one.
func SummarizeStreaks(points []domain.StreakPoint) (current, longest int) {
	for _, p := range points {
		if p.Streak > longest {
			longest = p.Streak
		}
	}
	if len(points) > 0 {
		current = points[len(points)-1].Streak
	}
	return current, longest
}

// ComputeSuccesses lists the moments a goal's recurrence was fulfilled.
// Month and year period goals always yield an empty series.
func ComputeSuccesses(goal *domain.Goal, logs []*domain.GoalLog) ([]domain.SuccessPoint, error) {
	if err := goal.ValidateRecurrence(); err != nil {
		return nil, err
	}

	hist := history(goal.ID, logs)
	points := []domain.SuccessPoint{}
	if len(hist) == 0 || goal.Recurrence.Degenerate() {
		return points, nil
	}

	switch rec := goal.Recurrence.(type) {
	case domain.Daily:
		for _, l := range hist {
			points = append(points, successAt(l.Date, l.Achieved()))
		}
	case domain.SpecificDays:
		for _, l := range hist {
			if rec.Includes(l.Date.Weekday()) {
				points = append(points, successAt(l.Date, l.Achieved()))
			}
		}
	case domain.DaysPerPeriod:
		if rec.Unit == domain.PeriodWeek {
			points = weeklySuccesses(rec.Count, hist)
		}
	case domain.RepeatingNDays:
		last := hist[0].Date
		for _, l := range hist {
			if l.Achieved() && l.Date.DaysSince(last) >= rec.Every {
				points = append(points, successAt(l.Date, true))
				last = l.Date
			}
		}
	default:
		return nil, domain.ErrUnknownFrequency
	}

	return points, nil
}

func weeklySuccesses(required int, hist []*domain.GoalLog) []domain.SuccessPoint {
	points := []domain.SuccessPoint{}
	last := hist[len(hist)-1].Date

	for start := WeekStart(hist[0].Date); !start.After(last); start = start.AddDays(7) {
		end := start.AddDays(6)

		count := 0
		var lastAchieved domain.Date
		for _, l := range hist {
			if l.Achieved() && l.Date.Within(start, end) {
				count++
				lastAchieved = l.Date
			}
		}

		if count > 0 && count >= required {
			points = append(points, successAt(lastAchieved, true))
		}
	}

	return points
}

func successAt(d domain.Date, ok bool) domain.SuccessPoint {
	if ok {
		return domain.SuccessPoint{Date: d, Success: 1}
	}
	return domain.SuccessPoint{Date: d, Success: 0}
}

// RatingSeries lists the ratings of achieved logs, oldest first.
func RatingSeries(logs []*domain.GoalLog) []domain.RatingPoint {
	points := []domain.RatingPoint{}
	for _, l := range sortedCopy(logs) {
		if l.Achieved() && l.Rating != nil {
			points = append(points, domain.RatingPoint{Date: l.Date, Rating: *l.Rating})
		}
	}
	return points
}
