package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse resolves a quick-add query into a structured event plus the
	// pre-filled calendar URL and display strings. It degrades instead of
	// failing: only an empty query or unknown profile yields an error.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Create parses the query and inserts the event through the Calendar
	// API. Requires calendar credentials to be configured.
	Create(ctx context.Context, input ParseInput) (CreateOutput, error)
}
