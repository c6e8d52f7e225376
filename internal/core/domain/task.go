package domain

import "time"

// User owns a task catalogue and, once indexed, a vector space.
type User struct {
	// ID is the unique identifier for the user.
	ID string

	// Email is the user's contact address.
	Email string

	// Name is the display name.
	Name string

	// CreatedAt is when the user was created.
	CreatedAt time.Time
}

// Task is a single unit of work belonging to a user.
// The Description field is the text that gets embedded during indexing;
// the retrieval core treats the task itself as read-only input.
type Task struct {
	// ID is the unique identifier for the task.
	ID string

	// UserID links to the owning User.
	UserID string

	// Description is the free-text body of the task.
	Description string

	// Done marks the task as completed.
	Done bool

	// CreatedAt is when the task was created.
	CreatedAt time.Time

	// UpdatedAt is when the task was last updated.
	UpdatedAt time.Time
}
