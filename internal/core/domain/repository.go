package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrGoalNotFound = fmt.Errorf("goal %w", ErrNotFound)
	ErrLogNotFound  = fmt.Errorf("goal log %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrGoalConflict = errors.New("goal already exists")
	ErrUserConflict = errors.New("user already exists")
)

type GoalRepository interface {
	// Create persists a new goal definition.
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal by its unique identifier.
	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves all goals owned by a user.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	// Update replaces the stored definition of an existing goal.
	Update(ctx context.Context, goal *Goal) error

	// Delete permanently removes a goal.
	Delete(ctx context.Context, id string) error

	// UpdateStreaks stores the cached streak summary of a goal.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type GoalLogRepository interface {
	// Upsert stores the log, replacing any existing log with the same
	// (goal, user, date) key entirely.
	Upsert(ctx context.Context, log *GoalLog) error

	GetByID(ctx context.Context, id string) (*GoalLog, error)

	Delete(ctx context.Context, id string) error

	DeleteByGoalID(ctx context.Context, goalID string) error

	// ListByGoalID returns the complete history of a goal, oldest first.
	ListByGoalID(ctx context.Context, goalID string) ([]*GoalLog, error)

	ListByUserAndDate(ctx context.Context, userID string, date Date) ([]*GoalLog, error)

	// ListByUserAndDateRange returns logs with from <= date <= to, oldest first.
	ListByUserAndDateRange(ctx context.Context, userID string, from, to Date) ([]*GoalLog, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
