package driving

import (
	"context"

	"github.com/semtask/semtask-cli/internal/core/domain"
)

// TaskService manages the task catalogue (the system of record).
type TaskService interface {
	// AddTask creates a task for a user and returns it with a generated ID.
	AddTask(ctx context.Context, userID, description string) (*domain.Task, error)

	// ListTasks returns all tasks owned by the user.
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)

	// RemoveTask deletes a task from the system of record.
	// The task's vector entry, if any, is left behind and cleaned up lazily
	// at query time.
	RemoveTask(ctx context.Context, id string) error

	// AddUser creates a user.
	AddUser(ctx context.Context, id, email, name string) (*domain.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
