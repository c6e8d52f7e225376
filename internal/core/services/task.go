package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
	"github.com/semtask/semtask-cli/internal/core/ports/driving"
)

// Ensure TaskService implements the interface.
var _ driving.TaskService = (*TaskService)(nil)

// TaskService manages the task catalogue and its owners.
type TaskService struct {
	taskStore driven.TaskStore
	userStore driven.UserStore
}

// NewTaskService creates a new task service.
func NewTaskService(taskStore driven.TaskStore, userStore driven.UserStore) *TaskService {
	return &TaskService{
		taskStore: taskStore,
		userStore: userStore,
	}
}

// AddTask creates a task for a user and returns it with a generated ID.
func (s *TaskService) AddTask(ctx context.Context, userID, description string) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: task description is empty", domain.ErrInvalidInput)
	}

	if _, err := s.userStore.Get(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskStore.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return &task, nil
}

// ListTasks returns all tasks owned by the user.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks for user %s: %w", userID, err)
	}
	return tasks, nil
}

// RemoveTask deletes a task from the system of record.
// Vector entries are not cascaded; stale ones are dropped lazily at query time.
func (s *TaskService) RemoveTask(ctx context.Context, id string) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// AddUser creates a user. An empty id gets a generated UUID.
func (s *TaskService) AddUser(ctx context.Context, id, email, name string) (*domain.User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := s.userStore.Get(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrAlreadyExists, id)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	user := domain.User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &user, nil
}

// ListUsers returns all users.
func (s *TaskService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
