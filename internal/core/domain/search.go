package domain

// TaskMatch is the outcome of a semantic query: the single task whose stored
// embedding scored highest against the query embedding.
//
// A query that finds nothing produces no TaskMatch at all (nil), which is a
// valid empty state and must never be conflated with an infrastructure
// failure.
type TaskMatch struct {
	// Task is the matched task, hydrated from the system of record.
	Task Task

	// Score is the cosine similarity between the query embedding and the
	// task's stored embedding, in [-1, 1].
	Score float64
}
