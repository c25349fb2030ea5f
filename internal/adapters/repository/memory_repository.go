package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
)

var (
	_ domain.GoalRepository    = (*InMemoryGoalRepository)(nil)
	_ domain.GoalLogRepository = (*InMemoryGoalLogRepository)(nil)
	_ domain.UserRepository    = (*InMemoryUserRepository)(nil)
)

// InMemoryGoalRepository keeps copies of goals so callers cannot mutate
// stored state through returned pointers.
type InMemoryGoalRepository struct {
	store map[string]*domain.Goal

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]*domain.Goal),
	}
}

func cloneGoal(g *domain.Goal) *domain.Goal {
	c := *g
	if g.TargetSuccesses != nil {
		n := *g.TargetSuccesses
		c.TargetSuccesses = &n
	}
	return &c
}

func (r *InMemoryGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[goal.ID]; ok {
		return domain.ErrGoalConflict
	}
	r.store[goal.ID] = cloneGoal(goal)
	return nil
}

func (r *InMemoryGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.store[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return cloneGoal(goal), nil
}

func (r *InMemoryGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store {
		if g.UserID == userID {
			goals = append(goals, cloneGoal(g))
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].ID < goals[j].ID
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})

	return goals, nil
}

func (r *InMemoryGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[goal.ID]
	if !ok {
		return domain.ErrGoalNotFound
	}

	// Streaks are owned by UpdateStreaks.
	c := cloneGoal(goal)
	c.CurrentStreak, c.LongestStreak = stored.CurrentStreak, stored.LongestStreak
	c.CreatedAt = stored.CreatedAt
	r.store[goal.ID] = c
	return nil
}

func (r *InMemoryGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrGoalNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryGoalRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.store[id]
	if !ok {
		return domain.ErrGoalNotFound
	}
	g.CurrentStreak, g.LongestStreak = current, longest
	return nil
}

type logKey struct {
	goalID, userID, date string
}

type InMemoryGoalLogRepository struct {
	goals domain.GoalRepository
	byID  map[string]*domain.GoalLog
	byKey map[logKey]string

	mu sync.RWMutex
}

// NewInMemoryGoalLogRepository returns a log store. When goals is non-nil,
// Upsert rejects logs whose goal does not exist.
func NewInMemoryGoalLogRepository(goals domain.GoalRepository) *InMemoryGoalLogRepository {
	return &InMemoryGoalLogRepository{
		goals: goals,
		byID:  make(map[string]*domain.GoalLog),
		byKey: make(map[logKey]string),
	}
}

func keyOf(l *domain.GoalLog) logKey {
	return logKey{goalID: l.GoalID, userID: l.UserID, date: l.Date.String()}
}

func cloneLog(l *domain.GoalLog) *domain.GoalLog {
	c := *l
	if l.Rating != nil {
		n := *l.Rating
		c.Rating = &n
	}
	return &c
}

func (r *InMemoryGoalLogRepository) Upsert(ctx context.Context, log *domain.GoalLog) error {
	if r.goals != nil {
		if _, err := r.goals.GetByID(ctx, log.GoalID); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := keyOf(log)
	if oldID, ok := r.byKey[k]; ok {
		delete(r.byID, oldID)
	}
	r.byID[log.ID] = cloneLog(log)
	r.byKey[k] = log.ID
	return nil
}

func (r *InMemoryGoalLogRepository) GetByID(ctx context.Context, id string) (*domain.GoalLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	return cloneLog(l), nil
}

func (r *InMemoryGoalLogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return domain.ErrLogNotFound
	}
	delete(r.byKey, keyOf(l))
	delete(r.byID, id)
	return nil
}

func (r *InMemoryGoalLogRepository) DeleteByGoalID(ctx context.Context, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.byID {
		if l.GoalID == goalID {
			delete(r.byKey, keyOf(l))
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *InMemoryGoalLogRepository) ListByGoalID(ctx context.Context, goalID string) ([]*domain.GoalLog, error) {
	return r.filter(func(l *domain.GoalLog) bool { return l.GoalID == goalID }), nil
}

func (r *InMemoryGoalLogRepository) ListByUserAndDate(ctx context.Context, userID string, date domain.Date) ([]*domain.GoalLog, error) {
	return r.filter(func(l *domain.GoalLog) bool {
		return l.UserID == userID && l.Date.Equal(date)
	}), nil
}

func (r *InMemoryGoalLogRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.GoalLog, error) {
	return r.filter(func(l *domain.GoalLog) bool {
		return l.UserID == userID && l.Date.Within(from, to)
	}), nil
}

// filter returns matching logs ordered by date, then goal.
func (r *InMemoryGoalLogRepository) filter(match func(*domain.GoalLog) bool) []*domain.GoalLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := []*domain.GoalLog{}
	for _, l := range r.byID {
		if match(l) {
			logs = append(logs, cloneLog(l))
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.Before(logs[j].Date)
		}
		if logs[i].GoalID != logs[j].GoalID {
			return logs[i].GoalID < logs[j].GoalID
		}
		return logs[i].UserID < logs[j].UserID
	})
	return logs
}

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; ok {
		return domain.ErrUserConflict
	}
	c := *user
	r.store[user.ID] = &c
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *InMemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.store))
	for _, u := range r.store {
		c := *u
		users = append(users, &c)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}
