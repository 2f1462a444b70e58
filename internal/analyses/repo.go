package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	// Insert stores a new analysis and returns the store-assigned identifier.
	Insert(ctx context.Context, a Analysis) (string, error)
	// AttachFeedback sets the feedback sub-object on the matching analysis.
	// Fails with ErrInvalidID for malformed identifiers (without touching
	// the store) and ErrNotFound when no document matched.
	AttachFeedback(ctx context.Context, analysisID string, fb Feedback) error
	// List returns every stored analysis in natural iteration order.
	List(ctx context.Context) ([]Analysis, error)
}
