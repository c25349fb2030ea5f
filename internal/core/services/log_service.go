package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

// StreakQueue schedules a streak recount for a goal.
type StreakQueue interface {
	Enqueue(goalID string)
}

type LogService struct {
	repo     domain.GoalLogRepository
	goalRepo domain.GoalRepository
	streaks  StreakQueue
}

func NewLogService(repo domain.GoalLogRepository, goalRepo domain.GoalRepository, streaks StreakQueue) *LogService {
	return &LogService{
		repo:     repo,
		goalRepo: goalRepo,
		streaks:  streaks,
	}
}

type UpsertLogInput struct {
	GoalID string
	UserID string
	Date   domain.Date
	Status domain.LogStatus
	Rating *int
}

// Upsert stores the outcome of a goal for one day, replacing whatever was
// logged for the same goal, user and date. An empty UserID means the goal's
// owner.
func (s *LogService) Upsert(ctx context.Context, input UpsertLogInput) (*domain.GoalLog, error) {
	if input.GoalID == "" {
		return nil, domain.ErrLogMissingGoal
	}

	goal, err := s.goalRepo.GetByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	userID := input.UserID
	if userID == "" {
		userID = goal.UserID
	}
	if userID != goal.UserID {
		return nil, domain.ErrGoalNotFound
	}

	entry, err := domain.NewGoalLog(goal.ID, userID, input.Date, input.Status, input.Rating)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.streaks.Enqueue(goal.ID)

	return entry, nil
}

// ListByGoalID returns the full history of a goal, oldest first.
func (s *LogService) ListByGoalID(ctx context.Context, goalID string) ([]*domain.GoalLog, error) {
	return s.repo.ListByGoalID(ctx, goalID)
}

func (s *LogService) ListByUserAndDate(ctx context.Context, userID string, date domain.Date) ([]*domain.GoalLog, error) {
	if userID == "" {
		return nil, domain.ErrLogMissingUser
	}
	return s.repo.ListByUserAndDate(ctx, userID, date)
}

func (s *LogService) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.GoalLog, error) {
	if userID == "" {
		return nil, domain.ErrLogMissingUser
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range ends before it starts", domain.ErrInvalidDate)
	}
	return s.repo.ListByUserAndDateRange(ctx, userID, from, to)
}

func (s *LogService) Delete(ctx context.Context, id string) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.streaks.Enqueue(entry.GoalID)

	return nil
}
