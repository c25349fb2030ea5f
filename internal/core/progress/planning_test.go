package progress_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/progress"
	"github.com/stretchr/testify/assert"
)

func TestTargetSuccesses(t *testing.T) {
	today := day("2024-01-01")

	tests := []struct {
		name   string
		rec    domain.Recurrence
		target string
		want   int
	}{
		{"Daily", domain.Daily{}, "2024-01-11", 10},
		{"Three specific days over two weeks", domain.SpecificDays{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}}, "2024-01-15", 6},
		{"Three per week over ten days", domain.DaysPerPeriod{Count: 3, Unit: domain.PeriodWeek}, "2024-01-11", 6},
		{"Every three days over ten days", domain.RepeatingNDays{Every: 3}, "2024-01-11", 4},
		{"Zero interval counts as one", domain.RepeatingNDays{}, "2024-01-11", 10},
		{"Target in the past", domain.Daily{}, "2023-12-25", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progress.TargetSuccesses(tt.rec, today, day(tt.target)))
		})
	}
}

func TestTargetDate(t *testing.T) {
	today := day("2024-01-01")

	tests := []struct {
		name      string
		rec       domain.Recurrence
		successes int
		want      string
		wantOK    bool
	}{
		{"Daily", domain.Daily{}, 10, "2024-01-11", true},
		{"Three specific days", domain.SpecificDays{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}}, 3, "2024-01-08", true},
		{"Ten per month", domain.DaysPerPeriod{Count: 10, Unit: domain.PeriodMonth}, 25, "2024-03-31", true},
		{"Every two days", domain.RepeatingNDays{Every: 2}, 5, "2024-01-11", true},
		{"No specific days", domain.SpecificDays{}, 3, "", false},
		{"Unknown unit", domain.DaysPerPeriod{Count: 2}, 3, "", false},
		{"Negative successes", domain.Daily{}, -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := progress.TargetDate(tt.rec, today, tt.successes)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
