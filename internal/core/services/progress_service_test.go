package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
)

func achievedOn(date string) *domain.GoalLog {
	return &domain.GoalLog{GoalID: "g1", UserID: "u1", Date: domain.MustParseDate(date), Status: domain.StatusAchieved}
}

func TestProgressService_Evaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Evaluates against the full history", func(t *testing.T) {
		goals := new(MockGoalRepo)
		logs := new(MockLogRepo)
		svc := services.NewProgressService(goals, logs)

		goal := existingGoal()
		goal.Recurrence = domain.RepeatingNDays{Every: 5}
		goals.On("GetByID", ctx, "g1").Return(goal, nil)
		logs.On("ListByGoalID", ctx, "g1").Return([]*domain.GoalLog{achievedOn("2024-01-01")}, nil)

		v, err := svc.Evaluate(ctx, "g1", domain.MustParseDate("2024-01-07"))

		require.NoError(t, err)
		rv, ok := v.(domain.RepeatingVerdict)
		require.True(t, ok)
		assert.Equal(t, 6, rv.DaysSinceLastAchievement)
		assert.True(t, rv.IsRequired)
	})

	t.Run("Degenerate goal still returns a verdict", func(t *testing.T) {
		goals := new(MockGoalRepo)
		logs := new(MockLogRepo)
		svc := services.NewProgressService(goals, logs)

		goal := existingGoal()
		goal.Recurrence = domain.DaysPerPeriod{}
		goals.On("GetByID", ctx, "g1").Return(goal, nil)
		logs.On("ListByGoalID", ctx, "g1").Return([]*domain.GoalLog{}, nil)

		v, err := svc.Evaluate(ctx, "g1", domain.MustParseDate("2024-01-07"))

		require.NoError(t, err)
		assert.True(t, v.IsDegenerate())
	})

	t.Run("Error: Goal not found is terminal", func(t *testing.T) {
		goals := new(MockGoalRepo)
		logs := new(MockLogRepo)
		svc := services.NewProgressService(goals, logs)

		goals.On("GetByID", ctx, "ghost").Return(nil, domain.ErrGoalNotFound)

		_, err := svc.Evaluate(ctx, "ghost", domain.MustParseDate("2024-01-07"))

		assert.ErrorIs(t, err, domain.ErrNotFound)
		logs.AssertNotCalled(t, "ListByGoalID", mock.Anything, mock.Anything)
	})

	t.Run("Error: Log store failure", func(t *testing.T) {
		goals := new(MockGoalRepo)
		logs := new(MockLogRepo)
		svc := services.NewProgressService(goals, logs)
		dbErr := errors.New("connection refused")

		goals.On("GetByID", ctx, "g1").Return(existingGoal(), nil)
		logs.On("ListByGoalID", ctx, "g1").Return(nil, dbErr)

		_, err := svc.Evaluate(ctx, "g1", domain.MustParseDate("2024-01-07"))

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestProgressService_History(t *testing.T) {
	ctx := context.Background()
	goals := new(MockGoalRepo)
	logs := new(MockLogRepo)
	svc := services.NewProgressService(goals, logs)

	rated := achievedOn("2024-01-02")
	rated.Rating = ptr(6)

	goals.On("GetByID", ctx, "g1").Return(existingGoal(), nil)
	logs.On("ListByGoalID", ctx, "g1").Return([]*domain.GoalLog{
		achievedOn("2024-01-01"),
		rated,
		{GoalID: "g1", UserID: "u1", Date: domain.MustParseDate("2024-01-03"), Status: domain.StatusFailed},
	}, nil)

	h, err := svc.History(ctx, "g1")

	require.NoError(t, err)
	assert.Equal(t, "g1", h.GoalID)
	assert.Len(t, h.Streaks, 3)
	assert.Equal(t, 0, h.CurrentStreak)
	assert.Equal(t, 2, h.LongestStreak)
	assert.Len(t, h.Successes, 3)
	assert.Equal(t, []domain.RatingPoint{{Date: domain.MustParseDate("2024-01-02"), Rating: 6}}, h.Ratings)
}

func TestProgressService_Calendar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		goals := new(MockGoalRepo)
		logs := new(MockLogRepo)
		svc := services.NewProgressService(goals, logs)

		goals.On("ListByUserID", ctx, "u1").Return([]*domain.Goal{existingGoal()}, nil)
		logs.On("ListByUserAndDateRange", ctx, "u1", domain.MustParseDate("2024-02-01"), domain.MustParseDate("2024-02-29")).
			Return([]*domain.GoalLog{achievedOn("2024-02-10")}, nil)

		days, err := svc.Calendar(ctx, "u1", 2024, time.February)

		require.NoError(t, err)
		require.Len(t, days, 29)
		assert.Equal(t, domain.LevelHigh, days[9].Level)
		assert.Equal(t, domain.LevelNone, days[10].Level)
	})

	t.Run("Error: Month out of range", func(t *testing.T) {
		svc := services.NewProgressService(new(MockGoalRepo), new(MockLogRepo))

		_, err := svc.Calendar(ctx, "u1", 2024, 13)

		assert.ErrorIs(t, err, services.ErrInvalidMonth)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
