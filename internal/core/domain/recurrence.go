package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrUnknownFrequency   = fmt.Errorf("%w: unknown frequency type (must be daily, specific_days, days_per_period or repeating_n_days)", ErrInvalidInput)
	ErrInvalidWeekday     = fmt.Errorf("%w: invalid weekday name", ErrInvalidInput)
	ErrNoSpecificDays     = fmt.Errorf("%w: specific_days requires at least one weekday", ErrInvalidInput)
	ErrInvalidPeriodCount = fmt.Errorf("%w: days_per_period must be a positive number", ErrInvalidInput)
	ErrInvalidPeriodUnit  = fmt.Errorf("%w: period_unit must be week, month or year", ErrInvalidInput)
	ErrInvalidRepeatEvery = fmt.Errorf("%w: repeat_every_n_days must be a positive number", ErrInvalidInput)
)

type FrequencyType string

const (
	FrequencyDaily          FrequencyType = "daily"
	FrequencySpecificDays   FrequencyType = "specific_days"
	FrequencyDaysPerPeriod  FrequencyType = "days_per_period"
	FrequencyRepeatingNDays FrequencyType = "repeating_n_days"
)

type PeriodUnit string

const (
	PeriodWeek  PeriodUnit = "week"
	PeriodMonth PeriodUnit = "month"
	PeriodYear  PeriodUnit = "year"
)

func (u PeriodUnit) Valid() bool {
	switch u {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Recurrence is the closed set of schedules a goal can follow: Daily,
// SpecificDays, DaysPerPeriod and RepeatingNDays.
type Recurrence interface {
	Frequency() FrequencyType

	// Degenerate reports a schedule whose parameters make it impossible to
	// satisfy, such as a period target of zero.
	Degenerate() bool

	sealed()
}

type Daily struct{}

func (Daily) Frequency() FrequencyType { return FrequencyDaily }
func (Daily) Degenerate() bool         { return false }
func (Daily) sealed()                  {}

type SpecificDays struct {
	Days []time.Weekday
}

func (SpecificDays) Frequency() FrequencyType { return FrequencySpecificDays }
func (s SpecificDays) Degenerate() bool       { return len(s.Days) == 0 }
func (SpecificDays) sealed()                  {}

func (s SpecificDays) Includes(day time.Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

type DaysPerPeriod struct {
	Count int
	Unit  PeriodUnit
}

func (DaysPerPeriod) Frequency() FrequencyType { return FrequencyDaysPerPeriod }
func (p DaysPerPeriod) Degenerate() bool       { return p.Count <= 0 || !p.Unit.Valid() }
func (DaysPerPeriod) sealed()                  {}

type RepeatingNDays struct {
	Every int
}

func (RepeatingNDays) Frequency() FrequencyType { return FrequencyRepeatingNDays }
func (r RepeatingNDays) Degenerate() bool       { return r.Every <= 0 }
func (RepeatingNDays) sealed()                  {}

// WeekdayName returns the lowercase English name of a weekday, e.g. "monday".
func WeekdayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}

// RecurrenceFields is the flat shape a recurrence takes in JSON, SQL rows and
// fixture files. Only the fields matching FrequencyType carry meaning.
type RecurrenceFields struct {
	FrequencyType    FrequencyType `json:"frequency_type" yaml:"frequency_type"`
	SpecificDays     []string      `json:"specific_days,omitempty" yaml:"specific_days,omitempty"`
	DaysPerPeriod    int           `json:"days_per_period,omitempty" yaml:"days_per_period,omitempty"`
	PeriodUnit       PeriodUnit    `json:"period_unit,omitempty" yaml:"period_unit,omitempty"`
	RepeatEveryNDays int           `json:"repeat_every_n_days,omitempty" yaml:"repeat_every_n_days,omitempty"`
}

// FieldsOf flattens a recurrence. A nil recurrence yields empty fields.
func FieldsOf(r Recurrence) RecurrenceFields {
	switch rec := r.(type) {
	case Daily:
		return RecurrenceFields{FrequencyType: FrequencyDaily}
	case SpecificDays:
		names := make([]string, 0, len(rec.Days))
		for _, d := range rec.Days {
			names = append(names, WeekdayName(d))
		}
		return RecurrenceFields{FrequencyType: FrequencySpecificDays, SpecificDays: names}
	case DaysPerPeriod:
		return RecurrenceFields{FrequencyType: FrequencyDaysPerPeriod, DaysPerPeriod: rec.Count, PeriodUnit: rec.Unit}
	case RepeatingNDays:
		return RecurrenceFields{FrequencyType: FrequencyRepeatingNDays, RepeatEveryNDays: rec.Every}
	}
	return RecurrenceFields{}
}

// Strict builds a recurrence from user input, rejecting anything that would
// make the goal unsatisfiable.
func (f RecurrenceFields) Strict() (Recurrence, error) {
	switch f.FrequencyType {
	case FrequencyDaily:
		return Daily{}, nil
	case FrequencySpecificDays:
		days := make([]time.Weekday, 0, len(f.SpecificDays))
		for _, name := range f.SpecificDays {
			day, ok := ParseWeekday(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
			}
			days = append(days, day)
		}
		if len(days) == 0 {
			return nil, ErrNoSpecificDays
		}
		return SpecificDays{Days: normalizeWeekdays(days)}, nil
	case FrequencyDaysPerPeriod:
		if f.DaysPerPeriod <= 0 {
			return nil, ErrInvalidPeriodCount
		}
		if !f.PeriodUnit.Valid() {
			return nil, ErrInvalidPeriodUnit
		}
		return DaysPerPeriod{Count: f.DaysPerPeriod, Unit: f.PeriodUnit}, nil
	case FrequencyRepeatingNDays:
		if f.RepeatEveryNDays <= 0 {
			return nil, ErrInvalidRepeatEvery
		}
		return RepeatingNDays{Every: f.RepeatEveryNDays}, nil
	}
	return nil, ErrUnknownFrequency
}

// Tolerant builds a recurrence from stored or imported data. Missing numbers
// stay zero, unknown weekday names are dropped; only an unknown frequency
// type is an error.
func (f RecurrenceFields) Tolerant() (Recurrence, error) {
	switch f.FrequencyType {
	case FrequencyDaily:
		return Daily{}, nil
	case FrequencySpecificDays:
		days := make([]time.Weekday, 0, len(f.SpecificDays))
		for _, name := range f.SpecificDays {
			if day, ok := ParseWeekday(name); ok {
				days = append(days, day)
			}
		}
		return SpecificDays{Days: normalizeWeekdays(days)}, nil
	case FrequencyDaysPerPeriod:
		return DaysPerPeriod{Count: f.DaysPerPeriod, Unit: f.PeriodUnit}, nil
	case FrequencyRepeatingNDays:
		return RepeatingNDays{Every: f.RepeatEveryNDays}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, f.FrequencyType)
}

func normalizeWeekdays(days []time.Weekday) []time.Weekday {
	if len(days) == 0 {
		return nil
	}

	seen := make(map[time.Weekday]bool)
	var unique []time.Weekday
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return unique
}
