package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.UserRepository = (*SQLUserRepository)(nil)

type SQLUserRepository struct {
	db *sqlx.DB
}

func NewSQLUserRepository(db *sqlx.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO users (id, name, created_at, updated_at)
		VALUES (:id, :name, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if constraintOf(err) == constraintUnique {
			return domain.ErrUserConflict
		}
		return fmt.Errorf("user repository: create failed: %w", err)
	}
	return nil
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user domain.User
	query := r.db.Rebind(`SELECT id, name, created_at, updated_at FROM users WHERE id = ?`)
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get failed: %w", err)
	}
	return &user, nil
}

func (r *SQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	users := []*domain.User{}
	if err := r.db.SelectContext(ctx, &users, `SELECT id, name, created_at, updated_at FROM users ORDER BY created_at ASC, id ASC`); err != nil {
		return nil, fmt.Errorf("user repository: list failed: %w", err)
	}
	return users, nil
}
