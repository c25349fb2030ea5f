// Package seed loads YAML fixtures into the tracker through its services.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
)

var ErrUnknownRef = errors.New("seed: unknown reference")

// Fixture is the document layout of a seed file. Goals and logs point at
// users and goals through the ref names declared in the same file.
type Fixture struct {
	Users []UserFixture `yaml:"users"`
	Goals []GoalFixture `yaml:"goals"`
	Logs  []LogFixture  `yaml:"logs"`
}

type UserFixture struct {
	Ref  string `yaml:"ref"`
	Name string `yaml:"name"`
}

type GoalFixture struct {
	Ref      string `yaml:"ref"`
	User     string `yaml:"user"`
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Floor    string `yaml:"floor"`
	Ceiling  string `yaml:"ceiling"`
	Unit     string `yaml:"unit"`

	StartDate domain.Date `yaml:"start_date"`

	domain.RecurrenceFields `yaml:",inline"`

	TargetDate      domain.Date `yaml:"target_date,omitempty"`
	TargetSuccesses *int        `yaml:"target_successes,omitempty"`
}

type LogFixture struct {
	Goal   string           `yaml:"goal"`
	Date   domain.Date      `yaml:"date"`
	Status domain.LogStatus `yaml:"status"`
	Rating *int             `yaml:"rating,omitempty"`
}

// Summary counts what Apply created.
type Summary struct {
	Users int
	Goals int
	Logs  int
}

func LoadFile(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(bytes.NewReader(raw))
}

// Parse decodes a fixture, rejecting keys it does not know.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return &fx, nil
}

type Services struct {
	Users *services.UserService
	Goals *services.GoalService
	Logs  *services.LogService
}

// Apply creates users, then goals, then logs. It stops at the first error;
// whatever was created before it stays.
func Apply(ctx context.Context, fx *Fixture, svc Services) (Summary, error) {
	var sum Summary
	users := make(map[string]string, len(fx.Users))
	goals := make(map[string]string, len(fx.Goals))

	for _, u := range fx.Users {
		user, err := svc.Users.Register(ctx, u.Name)
		if err != nil {
			return sum, fmt.Errorf("seed: user %q: %w", u.Ref, err)
		}
		users[u.Ref] = user.ID
		sum.Users++
	}

	for _, g := range fx.Goals {
		userID, ok := users[g.User]
		if !ok {
			return sum, fmt.Errorf("%w: goal %q names user %q", ErrUnknownRef, g.Ref, g.User)
		}
		goal, err := svc.Goals.Create(ctx, g.input(userID))
		if err != nil {
			return sum, fmt.Errorf("seed: goal %q: %w", g.Ref, err)
		}
		goals[g.Ref] = goal.ID
		sum.Goals++
	}

	for i, l := range fx.Logs {
		goalID, ok := goals[l.Goal]
		if !ok {
			return sum, fmt.Errorf("%w: log %d names goal %q", ErrUnknownRef, i, l.Goal)
		}
		if _, err := svc.Logs.Upsert(ctx, services.UpsertLogInput{
			GoalID: goalID,
			Date:   l.Date,
			Status: l.Status,
			Rating: l.Rating,
		}); err != nil {
			return sum, fmt.Errorf("seed: log %d: %w", i, err)
		}
		sum.Logs++
	}

	slog.Info("seed applied", "users", sum.Users, "goals", sum.Goals, "logs", sum.Logs)
	return sum, nil
}

func (g GoalFixture) input(userID string) services.CreateGoalInput {
	return services.CreateGoalInput{
		UserID: userID,
		Details: domain.GoalDetails{
			Category: g.Category,
			Title:    g.Title,
			Floor:    g.Floor,
			Ceiling:  g.Ceiling,
			Unit:     g.Unit,
		},
		StartDate:       g.StartDate,
		Recurrence:      g.RecurrenceFields,
		TargetDate:      g.TargetDate,
		TargetSuccesses: g.TargetSuccesses,
	}
}
