package usage

import (
	"context"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Store defines persistence operations for usage-limit records.
type Store interface {
	// Find returns the record for the given date key, reporting absence
	// without an error.
	Find(ctx context.Context, date string) (Record, bool, error)
	// IncrementIfBelow adds one to the tier's used counter, but only when
	// the record exists and the counter is still below its limit. It
	// reports whether a record was updated.
	IncrementIfBelow(ctx context.Context, date string, tier vision.Tier) (bool, error)
	// List returns every usage-limit record.
	List(ctx context.Context) ([]Record, error)
}
