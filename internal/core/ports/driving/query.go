package driving

import (
	"context"

	"github.com/semtask/semtask-cli/internal/core/domain"
)

// QueryService answers free-text queries against a user's vector space.
type QueryService interface {
	// Query embeds the text, scans the user's stored embeddings for the
	// highest cosine similarity, and returns the winning task.
	//
	// Returns (nil, nil) when there is no match: the user has never been
	// indexed, their vector space is empty, or the matched task no longer
	// exists. Returns an error only on infrastructure failure (store or
	// embedding provider unavailable) - callers can always tell "no match"
	// from "could not search".
	Query(ctx context.Context, userID, text string) (*domain.TaskMatch, error)
}
