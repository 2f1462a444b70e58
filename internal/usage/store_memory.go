package usage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// MemoryStore keeps usage-limit records in memory and is safe for
// concurrent use. It backs tests and local development.
type MemoryStore struct {
	mu     sync.RWMutex
	byDate map[string]Record
	order  []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byDate: make(map[string]Record)}
}

// Put inserts or replaces the record for its date, assigning an ID when
// missing. Records are normally provisioned outside the service; Put is
// the seam tests use to seed them.
func (s *MemoryStore) Put(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	if _, ok := s.byDate[rec.Date]; !ok {
		s.order = append(s.order, rec.Date)
	}
	s.byDate[rec.Date] = rec
}

// Find returns the record for the given date key.
func (s *MemoryStore) Find(ctx context.Context, date string) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byDate[date]
	return rec, ok, nil
}

// IncrementIfBelow adds one to the tier's counter when still below its limit.
func (s *MemoryStore) IncrementIfBelow(ctx context.Context, date string, tier vision.Tier) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byDate[date]
	if !ok {
		return false, nil
	}
	if tier == vision.TierSR {
		if rec.SRUsed >= rec.SRLimit {
			return false, nil
		}
		rec.SRUsed++
	} else {
		if rec.JRUsed >= rec.JRLimit {
			return false, nil
		}
		rec.JRUsed++
	}
	s.byDate[date] = rec
	return true, nil
}

// List returns records in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, 0, len(s.order))
	for _, date := range s.order {
		records = append(records, s.byDate[date])
	}
	return records, nil
}
