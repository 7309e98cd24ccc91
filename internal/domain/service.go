package domain

import "context"

// NoteSource defines the port for the external note hosting provider.
// Implementations fetch every page of the configured collection and reduce
// each to a Note; a failed page-listing call aborts the batch, while a failed
// per-page content fetch only degrades that note to empty content.
type NoteSource interface {
	FetchNotes(ctx context.Context) ([]Note, error)
}

// QuizGenerator defines the port for the generative model provider.
// Generate submits a fully built prompt and returns a validated quiz; it
// never retries, and it rejects the whole response on any schema violation.
type QuizGenerator interface {
	Generate(ctx context.Context, prompt string) (*Quiz, error)
}

// QuizProvider is the single entry point quiz consumers use. One current
// quiz exists per process; GetQuiz serves it from cache within the TTL and
// regenerates it (at most one regeneration in flight) otherwise.
type QuizProvider interface {
	GetQuiz(ctx context.Context) (*Quiz, error)
}
