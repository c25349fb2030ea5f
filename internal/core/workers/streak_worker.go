package workers

import (
	"context"
	"log/slog"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/progress"
)

const DefaultQueueSize = 100

type GoalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type LogRepository interface {
	ListByGoalID(ctx context.Context, goalID string) ([]*domain.GoalLog, error)
}

type StreakJob struct {
	GoalID string
}

// StreakWorker keeps the cached streak summary of goals in sync with their
// logs. Jobs are processed one at a time by a single goroutine.
type StreakWorker struct {
	goalRepo GoalRepository
	logRepo  LogRepository
	jobs     chan StreakJob
	logger   *slog.Logger
}

func NewStreakWorker(gRepo GoalRepository, lRepo LogRepository, queueSize int) *StreakWorker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &StreakWorker{
		goalRepo: gRepo,
		logRepo:  lRepo,
		jobs:     make(chan StreakJob, queueSize),
		logger:   slog.Default().With("component", "streak_worker"),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		w.logger.Info("streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.logger.Info("streak worker shutting down")
				return
			}
		}
	}()
}

// Enqueue schedules a recount without blocking. When the queue is full the
// job is dropped.
func (w *StreakWorker) Enqueue(goalID string) {
	select {
	case w.jobs <- StreakJob{GoalID: goalID}:
	default:
		w.logger.Warn("streak queue full, dropping job", "goal_id", goalID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	goal, err := w.goalRepo.GetByID(ctx, job.GoalID)
	if err != nil {
		w.logger.Error("fetching goal", "goal_id", job.GoalID, "error", err)
		return
	}

	logs, err := w.logRepo.ListByGoalID(ctx, job.GoalID)
	if err != nil {
		w.logger.Error("fetching logs", "goal_id", job.GoalID, "error", err)
		return
	}

	current, longest := progress.SummarizeStreaks(progress.ComputeStreaks(logs))

	if goal.CurrentStreak == current && goal.LongestStreak == longest {
		return
	}

	if err := w.goalRepo.UpdateStreaks(ctx, goal.ID, current, longest); err != nil {
		w.logger.Error("updating streaks", "goal_id", goal.ID, "error", err)
		return
	}

	w.logger.Debug("streaks updated", "goal_id", goal.ID, "current", current, "longest", longest)
}
