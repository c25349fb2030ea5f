package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.GoalLogRepository = (*SQLGoalLogRepository)(nil)

const logColumns = `id, goal_id, user_id, log_date, status, rating, created_at, updated_at`

type SQLGoalLogRepository struct {
	db *sqlx.DB
}

func NewSQLGoalLogRepository(db *sqlx.DB) *SQLGoalLogRepository {
	return &SQLGoalLogRepository{db: db}
}

// Upsert replaces the whole row on a (goal, user, date) collision, id included.
func (r *SQLGoalLogRepository) Upsert(ctx context.Context, log *domain.GoalLog) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO goal_logs (` + logColumns + `)
		VALUES (:id, :goal_id, :user_id, :log_date, :status, :rating, :created_at, :updated_at)
		ON CONFLICT (goal_id, user_id, log_date) DO UPDATE SET
			id = excluded.id,
			status = excluded.status,
			rating = excluded.rating,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		if constraintOf(err) == constraintForeignKey {
			return domain.ErrGoalNotFound
		}
		return fmt.Errorf("log repository: upsert failed: %w", err)
	}
	return nil
}

func (r *SQLGoalLogRepository) GetByID(ctx context.Context, id string) (*domain.GoalLog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var log domain.GoalLog
	query := r.db.Rebind(`SELECT ` + logColumns + ` FROM goal_logs WHERE id = ?`)
	if err := r.db.GetContext(ctx, &log, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("log repository: get failed: %w", err)
	}
	return normalizeLog(&log), nil
}

func (r *SQLGoalLogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM goal_logs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("log repository: delete failed: %w", err)
	}
	return expectOneRow(res, domain.ErrLogNotFound)
}

func (r *SQLGoalLogRepository) DeleteByGoalID(ctx context.Context, goalID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM goal_logs WHERE goal_id = ?`), goalID); err != nil {
		return fmt.Errorf("log repository: delete by goal failed: %w", err)
	}
	return nil
}

func (r *SQLGoalLogRepository) ListByGoalID(ctx context.Context, goalID string) ([]*domain.GoalLog, error) {
	return r.list(ctx, `WHERE goal_id = ? ORDER BY log_date ASC, user_id ASC`, goalID)
}

func (r *SQLGoalLogRepository) ListByUserAndDate(ctx context.Context, userID string, date domain.Date) ([]*domain.GoalLog, error) {
	return r.list(ctx, `WHERE user_id = ? AND log_date = ? ORDER BY goal_id ASC`, userID, date)
}

func (r *SQLGoalLogRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.GoalLog, error) {
	return r.list(ctx,
		`WHERE user_id = ? AND log_date >= ? AND log_date <= ? ORDER BY log_date ASC, goal_id ASC`,
		userID, from, to)
}

func (r *SQLGoalLogRepository) list(ctx context.Context, where string, args ...any) ([]*domain.GoalLog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	logs := []*domain.GoalLog{}
	query := r.db.Rebind(`SELECT ` + logColumns + ` FROM goal_logs ` + where)
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("log repository: list failed: %w", err)
	}
	for _, l := range logs {
		normalizeLog(l)
	}
	return logs, nil
}

func normalizeLog(l *domain.GoalLog) *domain.GoalLog {
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l
}
