package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/database"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestGoal(t *testing.T, userID string, rec domain.Recurrence) *domain.Goal {
	t.Helper()
	g, err := domain.NewGoal(userID, domain.GoalDetails{
		Category: "Health",
		Title:    "Walk",
		Floor:    "10 min",
		Ceiling:  "60 min",
		Unit:     "min",
	}, rec, domain.MustParseDate("2024-01-01"))
	require.NoError(t, err)
	return g
}

func newTestLog(t *testing.T, goalID, userID, date string, status domain.LogStatus, rating *int) *domain.GoalLog {
	t.Helper()
	l, err := domain.NewGoalLog(goalID, userID, domain.MustParseDate(date), status, rating)
	require.NoError(t, err)
	return l
}

func intPtr(n int) *int { return &n }

func TestSQLGoalRepository(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewSQLGoalRepository(db)

	t.Run("Create and GetByID round-trip every recurrence", func(t *testing.T) {
		recs := []domain.Recurrence{
			domain.Daily{},
			domain.SpecificDays{Days: []time.Weekday{time.Monday, time.Friday}},
			domain.DaysPerPeriod{Count: 3, Unit: domain.PeriodWeek},
			domain.RepeatingNDays{Every: 4},
		}

		for _, rec := range recs {
			g := newTestGoal(t, "user-rt", rec)
			require.NoError(t, g.SetTargets(domain.MustParseDate("2024-06-30"), intPtr(20)))
			require.NoError(t, repo.Create(ctx, g))

			got, err := repo.GetByID(ctx, g.ID)
			require.NoError(t, err)
			assert.Equal(t, g.Title, got.Title)
			assert.Equal(t, g.Floor, got.Floor)
			assert.Equal(t, g.StartDate, got.StartDate)
			assert.Equal(t, rec, got.Recurrence)
			assert.Equal(t, "2024-06-30", got.TargetDate.String())
			require.NotNil(t, got.TargetSuccesses)
			assert.Equal(t, 20, *got.TargetSuccesses)
			assert.WithinDuration(t, g.CreatedAt, got.CreatedAt, time.Millisecond)
		}
	})

	t.Run("Absent targets stay absent", func(t *testing.T) {
		g := newTestGoal(t, "user-nt", domain.Daily{})
		require.NoError(t, repo.Create(ctx, g))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.True(t, got.TargetDate.IsZero())
		assert.Nil(t, got.TargetSuccesses)
	})

	t.Run("Duplicate ID is a conflict", func(t *testing.T) {
		g := newTestGoal(t, "user-dup", domain.Daily{})
		require.NoError(t, repo.Create(ctx, g))
		assert.ErrorIs(t, repo.Create(ctx, g), domain.ErrGoalConflict)
	})

	t.Run("ListByUserID returns only the owner's goals", func(t *testing.T) {
		a := newTestGoal(t, "user-list", domain.Daily{})
		b := newTestGoal(t, "user-list", domain.RepeatingNDays{Every: 2})
		other := newTestGoal(t, "someone-else", domain.Daily{})
		for _, g := range []*domain.Goal{a, b, other} {
			require.NoError(t, repo.Create(ctx, g))
		}

		goals, err := repo.ListByUserID(ctx, "user-list")
		require.NoError(t, err)
		assert.Len(t, goals, 2)

		empty, err := repo.ListByUserID(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("Update replaces the definition but keeps streaks", func(t *testing.T) {
		g := newTestGoal(t, "user-up", domain.Daily{})
		require.NoError(t, repo.Create(ctx, g))
		require.NoError(t, repo.UpdateStreaks(ctx, g.ID, 3, 7))

		g.Title = "Walk further"
		g.Recurrence = domain.DaysPerPeriod{Count: 10, Unit: domain.PeriodMonth}
		require.NoError(t, repo.Update(ctx, g))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "Walk further", got.Title)
		assert.Equal(t, domain.DaysPerPeriod{Count: 10, Unit: domain.PeriodMonth}, got.Recurrence)
		assert.Equal(t, 3, got.CurrentStreak)
		assert.Equal(t, 7, got.LongestStreak)
	})

	t.Run("Missing goals", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		ghost := newTestGoal(t, "user-ghost", domain.Daily{})
		assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrGoalNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrGoalNotFound)
		assert.ErrorIs(t, repo.UpdateStreaks(ctx, "missing", 1, 1), domain.ErrGoalNotFound)
	})

	t.Run("Stored legacy recurrence is read tolerantly", func(t *testing.T) {
		g := newTestGoal(t, "user-legacy", domain.Daily{})
		require.NoError(t, repo.Create(ctx, g))
		_, err := db.Exec(`UPDATE goals SET frequency_type = 'specific_days', specific_days = '["Monday","Funday"]' WHERE id = ?`, g.ID)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SpecificDays{Days: []time.Weekday{time.Monday}}, got.Recurrence)
	})
}

func TestSQLGoalLogRepository(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	goals := NewSQLGoalRepository(db)
	logs := NewSQLGoalLogRepository(db)

	g := newTestGoal(t, "u1", domain.Daily{})
	require.NoError(t, goals.Create(ctx, g))

	t.Run("Upsert replaces the log for the same day", func(t *testing.T) {
		first := newTestLog(t, g.ID, "u1", "2024-01-02", domain.StatusFailed, nil)
		require.NoError(t, logs.Upsert(ctx, first))

		second := newTestLog(t, g.ID, "u1", "2024-01-02", domain.StatusAchieved, intPtr(8))
		require.NoError(t, logs.Upsert(ctx, second))

		history, err := logs.ListByGoalID(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, domain.StatusAchieved, history[0].Status)
		require.NotNil(t, history[0].Rating)
		assert.Equal(t, 8, *history[0].Rating)

		_, err = logs.GetByID(ctx, first.ID)
		assert.ErrorIs(t, err, domain.ErrLogNotFound)
	})

	t.Run("Upsert for an unknown goal fails", func(t *testing.T) {
		orphan := newTestLog(t, "no-such-goal", "u1", "2024-01-02", domain.StatusAchieved, nil)
		assert.ErrorIs(t, logs.Upsert(ctx, orphan), domain.ErrGoalNotFound)
	})

	t.Run("Listing by goal, day and range", func(t *testing.T) {
		for _, d := range []string{"2024-01-05", "2024-01-03", "2024-01-04"} {
			require.NoError(t, logs.Upsert(ctx, newTestLog(t, g.ID, "u1", d, domain.StatusAchieved, nil)))
		}

		history, err := logs.ListByGoalID(ctx, g.ID)
		require.NoError(t, err)
		var dates []string
		for _, l := range history {
			dates = append(dates, l.Date.String())
		}
		assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, dates)

		day, err := logs.ListByUserAndDate(ctx, "u1", domain.MustParseDate("2024-01-04"))
		require.NoError(t, err)
		require.Len(t, day, 1)
		assert.Nil(t, day[0].Rating)

		window, err := logs.ListByUserAndDateRange(ctx, "u1",
			domain.MustParseDate("2024-01-03"), domain.MustParseDate("2024-01-04"))
		require.NoError(t, err)
		assert.Len(t, window, 2)

		none, err := logs.ListByUserAndDateRange(ctx, "u2",
			domain.MustParseDate("2024-01-01"), domain.MustParseDate("2024-12-31"))
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("Delete and DeleteByGoalID", func(t *testing.T) {
		history, err := logs.ListByGoalID(ctx, g.ID)
		require.NoError(t, err)
		require.NotEmpty(t, history)

		require.NoError(t, logs.Delete(ctx, history[0].ID))
		assert.ErrorIs(t, logs.Delete(ctx, history[0].ID), domain.ErrLogNotFound)

		require.NoError(t, logs.DeleteByGoalID(ctx, g.ID))
		history, err = logs.ListByGoalID(ctx, g.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Deleting a goal cascades to its logs", func(t *testing.T) {
		other := newTestGoal(t, "u1", domain.Daily{})
		require.NoError(t, goals.Create(ctx, other))
		l := newTestLog(t, other.ID, "u1", "2024-02-01", domain.StatusAchieved, nil)
		require.NoError(t, logs.Upsert(ctx, l))

		require.NoError(t, goals.Delete(ctx, other.ID))

		_, err := logs.GetByID(ctx, l.ID)
		assert.ErrorIs(t, err, domain.ErrLogNotFound)
	})
}

func TestSQLUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLUserRepository(setupSQLite(t))

	u, err := domain.NewUser("Ada")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, u), domain.ErrUserConflict)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
