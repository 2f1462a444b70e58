package analyses

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
// It mirrors the Mongo repo's identifier rules so handler behavior is
// identical in tests: IDs are ObjectID hex strings and malformed IDs are
// rejected before any lookup.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Analysis
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Analysis)}
}

// Insert stores the analysis under a freshly assigned ObjectID.
func (r *MemoryRepo) Insert(ctx context.Context, a Analysis) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	a.ID = id
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = a
	r.order = append(r.order, id)
	return id, nil
}

// AttachFeedback sets the feedback pair on a stored analysis.
func (r *MemoryRepo) AttachFeedback(ctx context.Context, analysisID string, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := primitive.ObjectIDFromHex(analysisID); err != nil {
		return ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[analysisID]
	if !ok {
		return ErrNotFound
	}
	a.Feedback = &fb
	r.byID[analysisID] = a
	return nil
}

// List returns analyses in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analyses := make([]Analysis, 0, len(r.order))
	for _, id := range r.order {
		analyses = append(analyses, r.byID[id])
	}
	return analyses, nil
}
