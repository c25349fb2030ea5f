package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrUserNameEmpty   = fmt.Errorf("%w: user name cannot be empty", ErrInvalidInput)
	ErrUserNameTooLong = fmt.Errorf("%w: user name is too long (max 100 chars)", ErrInvalidInput)
)

const MaxUserNameLen = 100

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewUser(name string) (*User, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, ErrUserNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxUserNameLen {
		return nil, ErrUserNameTooLong
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
