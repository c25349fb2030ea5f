package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate          = fmt.Errorf("%w: invalid date", ErrInvalidInput)
	ErrGoalTitleEmpty       = fmt.Errorf("%w: goal title cannot be empty", ErrInvalidInput)
	ErrGoalTitleTooLong     = fmt.Errorf("%w: goal title is too long (max 100 chars)", ErrInvalidInput)
	ErrGoalCategoryTooLong  = fmt.Errorf("%w: goal category is too long (max 50 chars)", ErrInvalidInput)
	ErrGoalOutcomeTooLong   = fmt.Errorf("%w: floor and ceiling are limited to 500 chars", ErrInvalidInput)
	ErrGoalInvalidUserID    = fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	ErrInvalidTargetCount   = fmt.Errorf("%w: target_successes cannot be negative", ErrInvalidInput)
	ErrTargetBeforeStart    = fmt.Errorf("%w: target_date cannot be before start_date", ErrInvalidInput)
	ErrMissingRecurrence    = fmt.Errorf("%w: frequency_type is required", ErrInvalidInput)
	errNoRecurrence         = fmt.Errorf("%w: goal has no recurrence", ErrUnknownFrequency)
)

const (
	MaxTitleLen    = 100
	MaxCategoryLen = 50
	MaxOutcomeLen  = 500
)

// Goal is a tracked commitment with a free-text floor (the minimum acceptable
// outcome) and ceiling (the ideal one).
type Goal struct {
	ID       string
	UserID   string
	Category string
	Title    string
	Floor    string
	Ceiling  string
	Unit     string

	StartDate  Date
	Recurrence Recurrence

	// Planning aids. A zero TargetDate means none.
	TargetDate      Date
	TargetSuccesses *int

	CurrentStreak int
	LongestStreak int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GoalDetails holds the descriptive text of a goal.
type GoalDetails struct {
	Category string
	Title    string
	Floor    string
	Ceiling  string
	Unit     string
}

func (d GoalDetails) normalize() (GoalDetails, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Floor = strings.TrimSpace(d.Floor)
	d.Ceiling = strings.TrimSpace(d.Ceiling)
	d.Unit = strings.TrimSpace(d.Unit)

	if d.Title == "" {
		return d, ErrGoalTitleEmpty
	}
	if len(d.Title) > MaxTitleLen {
		return d, ErrGoalTitleTooLong
	}
	if len(d.Category) > MaxCategoryLen {
		return d, ErrGoalCategoryTooLong
	}
	if len(d.Floor) > MaxOutcomeLen || len(d.Ceiling) > MaxOutcomeLen {
		return d, ErrGoalOutcomeTooLong
	}
	return d, nil
}

func NewGoal(userID string, details GoalDetails, rec Recurrence, start Date) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrGoalInvalidUserID
	}

	clean, err := details.normalize()
	if err != nil {
		return nil, err
	}

	if rec == nil {
		return nil, ErrMissingRecurrence
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", ErrInvalidDate)
	}

	now := time.Now().UTC()

	return &Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		Category:   clean.Category,
		Title:      clean.Title,
		Floor:      clean.Floor,
		Ceiling:    clean.Ceiling,
		Unit:       clean.Unit,
		StartDate:  start,
		Recurrence: rec,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GoalChanges describes a partial update. Empty strings, zero dates and nil
// values keep what the goal already has.
type GoalChanges struct {
	Details    GoalDetails
	StartDate  Date
	Recurrence Recurrence
}

func (g *Goal) Apply(changes GoalChanges) error {
	merged := GoalDetails{
		Category: pick(changes.Details.Category, g.Category),
		Title:    pick(changes.Details.Title, g.Title),
		Floor:    pick(changes.Details.Floor, g.Floor),
		Ceiling:  pick(changes.Details.Ceiling, g.Ceiling),
		Unit:     pick(changes.Details.Unit, g.Unit),
	}

	clean, err := merged.normalize()
	if err != nil {
		return err
	}

	g.Category = clean.Category
	g.Title = clean.Title
	g.Floor = clean.Floor
	g.Ceiling = clean.Ceiling
	g.Unit = clean.Unit

	if !changes.StartDate.IsZero() {
		g.StartDate = changes.StartDate
	}
	if changes.Recurrence != nil {
		g.Recurrence = changes.Recurrence
	}

	g.UpdatedAt = time.Now().UTC()
	return nil
}

// SetTargets stores the planning fields after checking them against the
// start date.
func (g *Goal) SetTargets(date Date, successes *int) error {
	if successes != nil && *successes < 0 {
		return ErrInvalidTargetCount
	}
	if !date.IsZero() && date.Before(g.StartDate) {
		return ErrTargetBeforeStart
	}
	g.TargetDate = date
	g.TargetSuccesses = successes
	return nil
}

func pick(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ValidateRecurrence reports ErrUnknownFrequency for goals whose recurrence
// is missing or not one of the known cases.
func (g *Goal) ValidateRecurrence() error {
	if g == nil || g.Recurrence == nil {
		return errNoRecurrence
	}
	switch g.Recurrence.(type) {
	case Daily, SpecificDays, DaysPerPeriod, RepeatingNDays:
		return nil
	}
	return ErrUnknownFrequency
}

type goalJSON struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Floor    string `json:"floor"`
	Ceiling  string `json:"ceiling"`
	Unit     string `json:"unit"`

	StartDate Date `json:"start_date"`
	RecurrenceFields

	TargetDate      Date `json:"target_date"`
	TargetSuccesses *int `json:"target_successes"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Goal) MarshalJSON() ([]byte, error) {
	return json.Marshal(goalJSON{
		ID:               g.ID,
		UserID:           g.UserID,
		Category:         g.Category,
		Title:            g.Title,
		Floor:            g.Floor,
		Ceiling:          g.Ceiling,
		Unit:             g.Unit,
		StartDate:        g.StartDate,
		RecurrenceFields: FieldsOf(g.Recurrence),
		TargetDate:       g.TargetDate,
		TargetSuccesses:  g.TargetSuccesses,
		CurrentStreak:    g.CurrentStreak,
		LongestStreak:    g.LongestStreak,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	})
}

// UnmarshalJSON reads a stored or exported goal. The recurrence is decoded
// tolerantly; user input goes through RecurrenceFields.Strict instead.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var raw goalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rec, err := raw.RecurrenceFields.Tolerant()
	if err != nil {
		return err
	}

	*g = Goal{
		ID:              raw.ID,
		UserID:          raw.UserID,
		Category:        raw.Category,
		Title:           raw.Title,
		Floor:           raw.Floor,
		Ceiling:         raw.Ceiling,
		Unit:            raw.Unit,
		StartDate:       raw.StartDate,
		Recurrence:      rec,
		TargetDate:      raw.TargetDate,
		TargetSuccesses: raw.TargetSuccesses,
		CurrentStreak:   raw.CurrentStreak,
		LongestStreak:   raw.LongestStreak,
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.UpdatedAt,
	}
	return nil
}
