package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.GoalRepository = (*SQLGoalRepository)(nil)

const queryTimeout = 3 * time.Second

const goalColumns = `id, user_id, category, title, floor, ceiling, unit, start_date,
	frequency_type, specific_days, days_per_period, period_unit, repeat_every_n_days,
	target_date, target_successes, current_streak, longest_streak, created_at, updated_at`

// SQLGoalRepository stores goals through sqlx. Queries are written with ?
// placeholders and rebound for the connected driver.
type SQLGoalRepository struct {
	db *sqlx.DB
}

func NewSQLGoalRepository(db *sqlx.DB) *SQLGoalRepository {
	return &SQLGoalRepository{db: db}
}

type goalRow struct {
	ID               string        `db:"id"`
	UserID           string        `db:"user_id"`
	Category         string        `db:"category"`
	Title            string        `db:"title"`
	Floor            string        `db:"floor"`
	Ceiling          string        `db:"ceiling"`
	Unit             string        `db:"unit"`
	StartDate        domain.Date   `db:"start_date"`
	FrequencyType    string        `db:"frequency_type"`
	SpecificDays     string        `db:"specific_days"`
	DaysPerPeriod    int           `db:"days_per_period"`
	PeriodUnit       string        `db:"period_unit"`
	RepeatEveryNDays int           `db:"repeat_every_n_days"`
	TargetDate       domain.Date   `db:"target_date"`
	TargetSuccesses  sql.NullInt64 `db:"target_successes"`
	CurrentStreak    int           `db:"current_streak"`
	LongestStreak    int           `db:"longest_streak"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func goalToRow(g *domain.Goal) (goalRow, error) {
	fields := domain.FieldsOf(g.Recurrence)

	days := fields.SpecificDays
	if days == nil {
		days = []string{}
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return goalRow{}, fmt.Errorf("failed to marshal specific days: %w", err)
	}

	row := goalRow{
		ID:               g.ID,
		UserID:           g.UserID,
		Category:         g.Category,
		Title:            g.Title,
		Floor:            g.Floor,
		Ceiling:          g.Ceiling,
		Unit:             g.Unit,
		StartDate:        g.StartDate,
		FrequencyType:    string(fields.FrequencyType),
		SpecificDays:     string(daysJSON),
		DaysPerPeriod:    fields.DaysPerPeriod,
		PeriodUnit:       string(fields.PeriodUnit),
		RepeatEveryNDays: fields.RepeatEveryNDays,
		TargetDate:       g.TargetDate,
		CurrentStreak:    g.CurrentStreak,
		LongestStreak:    g.LongestStreak,
		CreatedAt:        g.CreatedAt.UTC(),
		UpdatedAt:        g.UpdatedAt.UTC(),
	}
	if g.TargetSuccesses != nil {
		row.TargetSuccesses = sql.NullInt64{Int64: int64(*g.TargetSuccesses), Valid: true}
	}
	return row, nil
}

// toDomain reads stored recurrence fields tolerantly.
func (row goalRow) toDomain() (*domain.Goal, error) {
	var days []string
	if row.SpecificDays != "" {
		if err := json.Unmarshal([]byte(row.SpecificDays), &days); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specific days of goal %s: %w", row.ID, err)
		}
	}

	rec, err := domain.RecurrenceFields{
		FrequencyType:    domain.FrequencyType(row.FrequencyType),
		SpecificDays:     days,
		DaysPerPeriod:    row.DaysPerPeriod,
		PeriodUnit:       domain.PeriodUnit(row.PeriodUnit),
		RepeatEveryNDays: row.RepeatEveryNDays,
	}.Tolerant()
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", row.ID, err)
	}

	g := &domain.Goal{
		ID:            row.ID,
		UserID:        row.UserID,
		Category:      row.Category,
		Title:         row.Title,
		Floor:         row.Floor,
		Ceiling:       row.Ceiling,
		Unit:          row.Unit,
		StartDate:     row.StartDate,
		Recurrence:    rec,
		TargetDate:    row.TargetDate,
		CurrentStreak: row.CurrentStreak,
		LongestStreak: row.LongestStreak,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
	if row.TargetSuccesses.Valid {
		n := int(row.TargetSuccesses.Int64)
		g.TargetSuccesses = &n
	}
	return g, nil
}

func (r *SQLGoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row, err := goalToRow(g)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES (
			:id, :user_id, :category, :title, :floor, :ceiling, :unit, :start_date,
			:frequency_type, :specific_days, :days_per_period, :period_unit, :repeat_every_n_days,
			:target_date, :target_successes, :current_streak, :longest_streak, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if constraintOf(err) == constraintUnique {
			return domain.ErrGoalConflict
		}
		return fmt.Errorf("goal repository: create failed: %w", err)
	}
	return nil
}

func (r *SQLGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row goalRow
	query := r.db.Rebind(`SELECT ` + goalColumns + ` FROM goals WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("goal repository: get failed: %w", err)
	}
	return row.toDomain()
}

func (r *SQLGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var rows []goalRow
	query := r.db.Rebind(`SELECT ` + goalColumns + ` FROM goals WHERE user_id = ? ORDER BY created_at ASC, id ASC`)
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("goal repository: list failed: %w", err)
	}

	goals := make([]*domain.Goal, 0, len(rows))
	for _, row := range rows {
		g, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *SQLGoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row, err := goalToRow(g)
	if err != nil {
		return err
	}

	query := `
		UPDATE goals SET
			category = :category, title = :title, floor = :floor, ceiling = :ceiling, unit = :unit,
			start_date = :start_date, frequency_type = :frequency_type, specific_days = :specific_days,
			days_per_period = :days_per_period, period_unit = :period_unit,
			repeat_every_n_days = :repeat_every_n_days, target_date = :target_date,
			target_successes = :target_successes, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("goal repository: update failed: %w", err)
	}
	return expectOneRow(res, domain.ErrGoalNotFound)
}

func (r *SQLGoalRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM goals WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("goal repository: delete failed: %w", err)
	}
	return expectOneRow(res, domain.ErrGoalNotFound)
}

func (r *SQLGoalRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`UPDATE goals SET current_streak = ?, longest_streak = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, current, longest, id)
	if err != nil {
		return fmt.Errorf("goal repository: update streaks failed: %w", err)
	}
	return expectOneRow(res, domain.ErrGoalNotFound)
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
