package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/progress"
)

var ErrInvalidMonth = fmt.Errorf("%w: month must be between 1 and 12", domain.ErrInvalidInput)

type ProgressService struct {
	goalRepo domain.GoalRepository
	logRepo  domain.GoalLogRepository
	logger   *slog.Logger
}

func NewProgressService(goalRepo domain.GoalRepository, logRepo domain.GoalLogRepository) *ProgressService {
	return &ProgressService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
		logger:   slog.Default().With("component", "progress"),
	}
}

// Evaluate reports the progress of a goal as of ref.
func (s *ProgressService) Evaluate(ctx context.Context, goalID string, ref domain.Date) (domain.Verdict, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListByGoalID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	verdict, err := progress.Evaluate(goal, logs, ref)
	if err != nil {
		return nil, err
	}

	if verdict.IsDegenerate() {
		s.logger.Warn("goal can never be satisfied",
			"goal_id", goal.ID,
			"frequency_type", goal.Recurrence.Frequency(),
			"date", ref.String(),
		)
	}

	return verdict, nil
}

func (s *ProgressService) History(ctx context.Context, goalID string) (*domain.GoalHistory, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListByGoalID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	successes, err := progress.ComputeSuccesses(goal, logs)
	if err != nil {
		return nil, err
	}

	streaks := progress.ComputeStreaks(logs)
	current, longest := progress.SummarizeStreaks(streaks)

	return &domain.GoalHistory{
		GoalID:        goal.ID,
		Streaks:       streaks,
		Successes:     successes,
		Ratings:       progress.RatingSeries(logs),
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}

// Calendar summarises a user's logs for every day of a month.
func (s *ProgressService) Calendar(ctx context.Context, userID string, year int, month time.Month) ([]domain.CalendarDay, error) {
	if userID == "" {
		return nil, domain.ErrLogMissingUser
	}
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	first, last, _ := progress.PeriodBounds(domain.PeriodMonth, domain.NewDate(year, month, 1))
	logs, err := s.logRepo.ListByUserAndDateRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	return progress.CalendarMonth(year, month, logs, len(goals)), nil
}
