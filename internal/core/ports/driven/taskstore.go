package driven

import (
	"context"

	"github.com/semtask/semtask-cli/internal/core/domain"
)

// TaskStore is the system of record for tasks.
//
// The retrieval core only ever reads from it: ListByUser feeds the indexer
// and Get hydrates a query match. Save and Delete exist for the task
// management surface and never touch the vector store - record deletion does
// not cascade into the index (stale entries are cleaned up lazily at query
// time).
type TaskStore interface {
	// Save stores or updates a task.
	Save(ctx context.Context, task domain.Task) error

	// Get retrieves a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// ListByUser returns all tasks owned by the user.
	// Returns domain.ErrUserNotFound if the user is unknown; a known user
	// with no tasks yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)

	// Delete removes a task.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}

// UserStore persists users.
type UserStore interface {
	// Save stores or updates a user.
	Save(ctx context.Context, user domain.User) error

	// Get retrieves a user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	Get(ctx context.Context, id string) (*domain.User, error)

	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)
}
