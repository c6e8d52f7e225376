package driving

import "context"

// IndexService builds a user's vector space from their task catalogue.
type IndexService interface {
	// IndexUser embeds every task the user owns and stores the results in
	// the vector store, one task at a time.
	//
	// A single task's embedding failure does not abort the run; it is logged,
	// counted in the report, and the remaining tasks are still processed.
	// An unknown user or a vector store failure aborts the run with an error.
	IndexUser(ctx context.Context, userID string) (*IndexReport, error)
}

// IndexReport summarises one indexing run.
type IndexReport struct {
	// UserID is the user whose vector space was (re)built.
	UserID string

	// TasksIndexed is the number of tasks embedded and stored.
	TasksIndexed int

	// TasksFailed is the number of tasks skipped because their embedding
	// could not be generated.
	TasksFailed int
}
