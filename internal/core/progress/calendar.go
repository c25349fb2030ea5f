package progress

import (
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

// CalendarMonth builds one entry per day of the month. The level grades the
// share of totalGoals achieved that day.
func CalendarMonth(year int, month time.Month, logs []*domain.GoalLog, totalGoals int) []domain.CalendarDay {
	first, last, _ := PeriodBounds(domain.PeriodMonth, domain.NewDate(year, month, 1))

	days := make([]domain.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDays(1) {
		day := domain.CalendarDay{Date: d, TotalGoals: totalGoals}
		for _, l := range logs {
			if l == nil || !l.Date.Equal(d) {
				continue
			}
			day.Logged++
			if l.Achieved() {
				day.Achieved++
			}
		}
		day.Level = level(day.Logged, day.Achieved, totalGoals)
		days = append(days, day)
	}

	return days
}

func level(logged, achieved, total int) domain.CalendarLevel {
	if logged == 0 || total <= 0 {
		return domain.LevelNone
	}

	percentage := float64(achieved) / float64(total) * 100
	switch {
	case percentage >= 75:
		return domain.LevelHigh
	case percentage >= 25:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
