package progress

import (
	"sort"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

// WeekStart returns the Sunday that opens the week containing d.
func WeekStart(d domain.Date) domain.Date {
	return d.AddDays(-int(d.Weekday()))
}

// PeriodBounds returns the inclusive window of the given unit that contains
// ref. ok is false for an unknown unit.
func PeriodBounds(unit domain.PeriodUnit, ref domain.Date) (start, end domain.Date, ok bool) {
	switch unit {
	case domain.PeriodWeek:
		start = WeekStart(ref)
		return start, start.AddDays(6), true
	case domain.PeriodMonth:
		start = domain.NewDate(ref.Year(), ref.Month(), 1)
		return start, domain.NewDate(ref.Year(), ref.Month()+1, 1).AddDays(-1), true
	case domain.PeriodYear:
		return domain.NewDate(ref.Year(), time.January, 1), domain.NewDate(ref.Year(), time.December, 31), true
	}
	return domain.Date{}, domain.Date{}, false
}

// history narrows logs to one goal, keeps the last log seen for each date and
// returns a new slice sorted by date. The input is never modified.
func history(goalID string, logs []*domain.GoalLog) []*domain.GoalLog {
	byDate := make(map[string]*domain.GoalLog)
	for _, l := range logs {
		if l == nil || l.GoalID != goalID {
			continue
		}
		byDate[l.Date.String()] = l
	}

	out := make([]*domain.GoalLog, 0, len(byDate))
	for _, l := range byDate {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func sortedCopy(logs []*domain.GoalLog) []*domain.GoalLog {
	out := make([]*domain.GoalLog, 0, len(logs))
	for _, l := range logs {
		if l != nil {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func achievedOn(logs []*domain.GoalLog, day domain.Date) bool {
	for _, l := range logs {
		if l.Date.Equal(day) {
			return l.Achieved()
		}
	}
	return false
}

func countAchieved(logs []*domain.GoalLog, from, to domain.Date) int {
	n := 0
	for _, l := range logs {
		if l.Achieved() && l.Date.Within(from, to) {
			n++
		}
	}
	return n
}
