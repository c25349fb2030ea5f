package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/progress"
)

type GoalService struct {
	repo    domain.GoalRepository
	logRepo domain.GoalLogRepository
	now     func() time.Time
}

func NewGoalService(repo domain.GoalRepository, logRepo domain.GoalLogRepository) *GoalService {
	return &GoalService{
		repo:    repo,
		logRepo: logRepo,
		now:     time.Now,
	}
}

// WithClock replaces the clock used to resolve "today".
func (s *GoalService) WithClock(now func() time.Time) *GoalService {
	s.now = now
	return s
}

type CreateGoalInput struct {
	UserID     string
	Details    domain.GoalDetails
	StartDate  domain.Date
	Recurrence domain.RecurrenceFields

	TargetDate      domain.Date
	TargetSuccesses *int
}

type UpdateGoalInput struct {
	ID         string
	UserID     string
	Details    domain.GoalDetails
	StartDate  domain.Date
	Recurrence domain.RecurrenceFields

	TargetDate      domain.Date
	TargetSuccesses *int
}

func (s *GoalService) today() domain.Date {
	return domain.DateOf(s.now())
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	rec, err := input.Recurrence.Strict()
	if err != nil {
		return nil, err
	}

	start := input.StartDate
	if start.IsZero() {
		start = s.today()
	}

	goal, err := domain.NewGoal(input.UserID, input.Details, rec, start)
	if err != nil {
		return nil, err
	}

	if err := s.applyTargets(goal, input.TargetDate, input.TargetSuccesses); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Get returns the goal. A non-empty userID must match the owner, otherwise
// the goal is reported as missing.
func (s *GoalService) Get(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if userID != "" && goal.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}

	return goal, nil
}

func (s *GoalService) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.Get(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	var rec domain.Recurrence
	if input.Recurrence.FrequencyType != "" {
		rec, err = input.Recurrence.Strict()
		if err != nil {
			return nil, err
		}
	}

	err = goal.Apply(domain.GoalChanges{
		Details:    input.Details,
		StartDate:  input.StartDate,
		Recurrence: rec,
	})
	if err != nil {
		return nil, err
	}

	if !input.TargetDate.IsZero() || input.TargetSuccesses != nil {
		if err := s.applyTargets(goal, input.TargetDate, input.TargetSuccesses); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes the goal together with its logs.
func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	goal, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.logRepo.DeleteByGoalID(ctx, goal.ID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, goal.ID)
}

// applyTargets fills in whichever planning field is missing. Estimates are
// counted from today, or from the start date when the goal starts later.
func (s *GoalService) applyTargets(goal *domain.Goal, date domain.Date, successes *int) error {
	from := s.today()
	if goal.StartDate.After(from) {
		from = goal.StartDate
	}

	switch {
	case !date.IsZero() && successes == nil:
		n := progress.TargetSuccesses(goal.Recurrence, from, date)
		successes = &n
	case date.IsZero() && successes != nil && *successes >= 0:
		if d, ok := progress.TargetDate(goal.Recurrence, from, *successes); ok {
			date = d
		}
	}

	return goal.SetTargets(date, successes)
}
