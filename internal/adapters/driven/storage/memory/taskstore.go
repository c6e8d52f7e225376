// Package memory provides in-memory storage adapters.
// They back the service tests and are not durable.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore is an in-memory implementation of driven.UserStore.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

// Save stores or updates a user.
func (s *UserStore) Save(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

// Get retrieves a user by ID.
func (s *UserStore) Get(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

// List returns all users sorted by ID.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.User, 0, len(s.users))
	for id := range s.users {
		result = append(result, s.users[id])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// has reports whether a user exists, for the task store's unknown-user check.
func (s *UserStore) has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

// TaskStore is an in-memory implementation of driven.TaskStore.
// It shares a UserStore so that ListByUser can distinguish an unknown user
// from a known user with no tasks.
type TaskStore struct {
	mu    sync.RWMutex
	users *UserStore
	tasks map[string]domain.Task
}

// NewTaskStore creates a new in-memory task store backed by the given users.
func NewTaskStore(users *UserStore) *TaskStore {
	return &TaskStore{
		users: users,
		tasks: make(map[string]domain.Task),
	}
}

// Save stores or updates a task.
func (s *TaskStore) Save(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

// Get retrieves a task by ID.
func (s *TaskStore) Get(_ context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

// ListByUser returns all tasks owned by the user, sorted by ID.
func (s *TaskStore) ListByUser(_ context.Context, userID string) ([]domain.Task, error) {
	if !s.users.has(userID) {
		return nil, domain.ErrUserNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Task, 0)
	for id := range s.tasks {
		if s.tasks[id].UserID == userID {
			result = append(result, s.tasks[id])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Delete removes a task.
func (s *TaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}
