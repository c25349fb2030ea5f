package domain

type VerdictType string

const (
	VerdictDaily        VerdictType = "daily"
	VerdictSpecificDays VerdictType = "specific_days"
	VerdictPeriod       VerdictType = "period"
	VerdictRepeating    VerdictType = "repeating"
)

// Verdict is the progress of a goal as of a reference date. The concrete type
// depends on the goal's recurrence.
type Verdict interface {
	Kind() VerdictType
	IsDegenerate() bool
}

type DailyVerdict struct {
	Type       VerdictType `json:"type"`
	Date       Date        `json:"date"`
	IsAchieved bool        `json:"is_achieved"`
	Degenerate bool        `json:"degenerate"`
}

func (v DailyVerdict) Kind() VerdictType  { return VerdictDaily }
func (v DailyVerdict) IsDegenerate() bool { return v.Degenerate }

type SpecificDaysVerdict struct {
	Type       VerdictType `json:"type"`
	Date       Date        `json:"date"`
	Weekday    string      `json:"weekday"`
	IsRequired bool        `json:"is_required"`
	IsAchieved bool        `json:"is_achieved"`
	Degenerate bool        `json:"degenerate"`
}

func (v SpecificDaysVerdict) Kind() VerdictType  { return VerdictSpecificDays }
func (v SpecificDaysVerdict) IsDegenerate() bool { return v.Degenerate }

// DayStatus is one day of a weekly period breakdown. IsRequired is a
// period-level flag repeated on every day: true while the week's target is
// not yet met.
type DayStatus struct {
	Date       Date   `json:"date"`
	DayName    string `json:"day_name"`
	IsAchieved bool   `json:"is_achieved"`
	IsRequired bool   `json:"is_required"`
}

type PeriodVerdict struct {
	Type        VerdictType `json:"type"`
	Date        Date        `json:"date"`
	PeriodUnit  PeriodUnit  `json:"period_unit"`
	Achieved    int         `json:"achieved"`
	Required    int         `json:"required"`
	PeriodStart Date        `json:"period_start"`
	PeriodEnd   Date        `json:"period_end"`
	IsSatisfied bool        `json:"is_satisfied"`
	DailyStatus []DayStatus `json:"daily_status,omitempty"`
	Degenerate  bool        `json:"degenerate"`
}

func (v PeriodVerdict) Kind() VerdictType  { return VerdictPeriod }
func (v PeriodVerdict) IsDegenerate() bool { return v.Degenerate }

type RepeatingVerdict struct {
	Type                     VerdictType `json:"type"`
	Date                     Date        `json:"date"`
	LastAchievedDate         Date        `json:"last_achieved_date"`
	DaysSinceLastAchievement int         `json:"days_since_last_achievement"`
	RepeatEveryNDays         int         `json:"repeat_every_n_days"`
	IsRequired               bool        `json:"is_required"`
	DaysUntilDue             int         `json:"days_until_due"`
	Degenerate               bool        `json:"degenerate"`
}

func (v RepeatingVerdict) Kind() VerdictType  { return VerdictRepeating }
func (v RepeatingVerdict) IsDegenerate() bool { return v.Degenerate }
