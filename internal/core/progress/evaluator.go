// Package progress evaluates goals against their log history. Every function
// here is pure: the reference date is always passed in and inputs are never
// modified.
package progress

import (
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

// Evaluate reports the progress of goal as of ref. logs may contain the full
// unfiltered history; entries for other goals are ignored and when a date
// repeats the later entry wins.
func Evaluate(goal *domain.Goal, logs []*domain.GoalLog, ref domain.Date) (domain.Verdict, error) {
	if err := goal.ValidateRecurrence(); err != nil {
		return nil, err
	}

	hist := history(goal.ID, logs)

	switch rec := goal.Recurrence.(type) {
	case domain.Daily:
		return evaluateDaily(hist, ref), nil
	case domain.SpecificDays:
		return evaluateSpecificDays(rec, hist, ref), nil
	case domain.DaysPerPeriod:
		return evaluatePeriod(rec, hist, ref), nil
	case domain.RepeatingNDays:
		return evaluateRepeating(rec, hist, ref), nil
	}
	return nil, domain.ErrUnknownFrequency
}

func evaluateDaily(hist []*domain.GoalLog, ref domain.Date) domain.DailyVerdict {
	return domain.DailyVerdict{
		Type:       domain.VerdictDaily,
		Date:       ref,
		IsAchieved: achievedOn(hist, ref),
	}
}

func evaluateSpecificDays(rec domain.SpecificDays, hist []*domain.GoalLog, ref domain.Date) domain.SpecificDaysVerdict {
	return domain.SpecificDaysVerdict{
		Type:       domain.VerdictSpecificDays,
		Date:       ref,
		Weekday:    domain.WeekdayName(ref.Weekday()),
		IsRequired: rec.Includes(ref.Weekday()),
		IsAchieved: achievedOn(hist, ref),
		Degenerate: rec.Degenerate(),
	}
}

func evaluatePeriod(rec domain.DaysPerPeriod, hist []*domain.GoalLog, ref domain.Date) domain.PeriodVerdict {
	v := domain.PeriodVerdict{
		Type:       domain.VerdictPeriod,
		Date:       ref,
		PeriodUnit: rec.Unit,
		Required:   max(rec.Count, 0),
		Degenerate: rec.Degenerate(),
	}

	start, end, ok := PeriodBounds(rec.Unit, ref)
	if !ok {
		return v
	}

	v.PeriodStart = start
	v.PeriodEnd = end
	v.Achieved = countAchieved(hist, start, end)
	v.IsSatisfied = v.Required > 0 && v.Achieved >= v.Required

	if rec.Unit == domain.PeriodWeek {
		stillRequired := v.Achieved < v.Required
		v.DailyStatus = make([]domain.DayStatus, 0, 7)
		for i := 0; i < 7; i++ {
			day := start.AddDays(i)
			v.DailyStatus = append(v.DailyStatus, domain.DayStatus{
				Date:       day,
				DayName:    domain.WeekdayName(day.Weekday()),
				IsAchieved: achievedOn(hist, day),
				IsRequired: stillRequired,
			})
		}
	}

	return v
}

// evaluateRepeating only looks at achievements on or before ref.
func evaluateRepeating(rec domain.RepeatingNDays, hist []*domain.GoalLog, ref domain.Date) domain.RepeatingVerdict {
	v := domain.RepeatingVerdict{
		Type:             domain.VerdictRepeating,
		Date:             ref,
		RepeatEveryNDays: max(rec.Every, 0),
		Degenerate:       rec.Degenerate(),
	}

	for i := len(hist) - 1; i >= 0; i-- {
		if hist[i].Achieved() && !hist[i].Date.After(ref) {
			v.LastAchievedDate = hist[i].Date
			break
		}
	}

	if v.LastAchievedDate.IsZero() {
		v.DaysSinceLastAchievement = v.RepeatEveryNDays
	} else {
		v.DaysSinceLastAchievement = ref.DaysSince(v.LastAchievedDate)
	}

	if v.Degenerate {
		return v
	}

	v.IsRequired = v.DaysSinceLastAchievement >= rec.Every
	v.DaysUntilDue = max(0, rec.Every-v.DaysSinceLastAchievement)
	return v
}
