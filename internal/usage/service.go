package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/just-manoj/PathoAi-API/internal/shared/telemetry"
	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Service tracks per-day, per-tier usage against provisioned limits.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Check verifies today's counter for the tier is below its limit.
// An absent record for today denies the request.
func (s *Service) Check(ctx context.Context, tier vision.Tier) error {
	date := DateKey(s.now())
	rec, ok, err := s.store.Find(ctx, date)
	if err != nil {
		return fmt.Errorf("usage limit check failed: %w", err)
	}
	if !ok {
		return ErrNoRecordForToday
	}
	if rec.Used(tier) >= rec.Limit(tier) {
		return ErrLimitReached
	}
	return nil
}

// Increment adds one to today's counter for the tier, best-effort: the
// update is conditional on the counter still being below its limit, and
// failures are logged rather than propagated. The caller's request has
// already been fulfilled by the time this runs.
func (s *Service) Increment(ctx context.Context, tier vision.Tier) {
	date := DateKey(s.now())
	updated, err := s.store.IncrementIfBelow(ctx, date, tier)
	if err != nil {
		telemetry.Error("usage.increment_failed", map[string]any{
			"date":  date,
			"tier":  string(tier),
			"error": err.Error(),
		})
		return
	}
	if !updated {
		telemetry.Error("usage.increment_skipped", map[string]any{
			"date": date,
			"tier": string(tier),
		})
	}
}

// List returns every usage-limit record.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}
