package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogStatus = fmt.Errorf("%w: status must be achieved, failed or not_logged", ErrInvalidInput)
	ErrInvalidRating    = fmt.Errorf("%w: rating must be between 1 and 10", ErrInvalidInput)
	ErrLogMissingGoal   = fmt.Errorf("%w: goal_id is required", ErrInvalidInput)
	ErrLogMissingUser   = fmt.Errorf("%w: user_id is required", ErrInvalidInput)
)

type LogStatus string

const (
	StatusAchieved  LogStatus = "achieved"
	StatusFailed    LogStatus = "failed"
	StatusNotLogged LogStatus = "not_logged"
)

const (
	MinRating = 1
	MaxRating = 10
)

func (s LogStatus) Valid() bool {
	switch s {
	case StatusAchieved, StatusFailed, StatusNotLogged:
		return true
	}
	return false
}

// GoalLog records the outcome of a goal for one user on one calendar day.
type GoalLog struct {
	ID     string    `json:"id" db:"id"`
	GoalID string    `json:"goal_id" db:"goal_id"`
	UserID string    `json:"user_id" db:"user_id"`
	Date   Date      `json:"date" db:"log_date"`
	Status LogStatus `json:"status" db:"status"`
	Rating *int      `json:"rating,omitempty" db:"rating"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewGoalLog validates a log entry. A rating is only kept on achieved logs.
func NewGoalLog(goalID, userID string, date Date, status LogStatus, rating *int) (*GoalLog, error) {
	now := time.Now().UTC()

	l := &GoalLog{
		ID:        uuid.New().String(),
		GoalID:    strings.TrimSpace(goalID),
		UserID:    strings.TrimSpace(userID),
		Date:      date,
		Status:    status,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *GoalLog) Validate() error {
	if l.GoalID == "" {
		return ErrLogMissingGoal
	}
	if l.UserID == "" {
		return ErrLogMissingUser
	}
	if l.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if !l.Status.Valid() {
		return ErrInvalidLogStatus
	}

	if l.Status != StatusAchieved {
		l.Rating = nil
		return nil
	}
	if l.Rating != nil && (*l.Rating < MinRating || *l.Rating > MaxRating) {
		return ErrInvalidRating
	}
	return nil
}

func (l *GoalLog) Achieved() bool {
	return l != nil && l.Status == StatusAchieved
}
