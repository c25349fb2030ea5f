package progress

import (
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

var periodDays = map[domain.PeriodUnit]int{
	domain.PeriodWeek:  7,
	domain.PeriodMonth: 30,
	domain.PeriodYear:  365,
}

// TargetSuccesses estimates how many successes fit between today and target.
func TargetSuccesses(rec domain.Recurrence, today, target domain.Date) int {
	days := target.DaysSince(today)
	if days <= 0 {
		return 0
	}

	switch r := rec.(type) {
	case domain.Daily:
		return days
	case domain.SpecificDays:
		return days * len(r.Days) / 7
	case domain.DaysPerPeriod:
		unit, ok := periodDays[r.Unit]
		if !ok {
			return 0
		}
		return ceilDiv(days, unit) * max(r.Count, 0)
	case domain.RepeatingNDays:
		return ceilDiv(days, max(r.Every, 1))
	}
	return 0
}

// TargetDate estimates when successes will have been reached starting today.
// ok is false when the recurrence can never produce them.
func TargetDate(rec domain.Recurrence, today domain.Date, successes int) (domain.Date, bool) {
	if successes < 0 {
		return domain.Date{}, false
	}

	var days int
	switch r := rec.(type) {
	case domain.Daily:
		days = successes
	case domain.SpecificDays:
		if len(r.Days) == 0 {
			return domain.Date{}, false
		}
		days = ceilDiv(successes*7, len(r.Days))
	case domain.DaysPerPeriod:
		unit, ok := periodDays[r.Unit]
		if !ok {
			return domain.Date{}, false
		}
		days = ceilDiv(successes, max(r.Count, 1)) * unit
	case domain.RepeatingNDays:
		days = successes * max(r.Every, 1)
	default:
		return domain.Date{}, false
	}

	return today.AddDays(days), true
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
