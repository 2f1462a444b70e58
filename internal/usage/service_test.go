package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)
}

func newServiceWithRecord(rec *Record) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	if rec != nil {
		rec.Date = DateKey(fixedNow())
		store.Put(*rec)
	}
	svc := NewService(store)
	svc.now = fixedNow
	return svc, store
}

func TestCheckAbsentRecordDenies(t *testing.T) {
	svc, _ := newServiceWithRecord(nil)
	if err := svc.Check(context.Background(), vision.TierJR); !errors.Is(err, ErrNoRecordForToday) {
		t.Fatalf("expected ErrNoRecordForToday, got %v", err)
	}
}

func TestCheckUnderLimitAllows(t *testing.T) {
	svc, _ := newServiceWithRecord(&Record{JRUsed: 4, JRLimit: 5, SRUsed: 0, SRLimit: 2})
	if err := svc.Check(context.Background(), vision.TierJR); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := svc.Check(context.Background(), vision.TierSR); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestCheckAtLimitDenies(t *testing.T) {
	svc, _ := newServiceWithRecord(&Record{JRUsed: 5, JRLimit: 5, SRUsed: 1, SRLimit: 2})
	if err := svc.Check(context.Background(), vision.TierJR); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	// The other tier still has headroom.
	if err := svc.Check(context.Background(), vision.TierSR); err != nil {
		t.Fatalf("expected nil for SR, got %v", err)
	}
}

func TestIncrementTouchesOnlyItsTier(t *testing.T) {
	svc, store := newServiceWithRecord(&Record{JRUsed: 1, JRLimit: 5, SRUsed: 3, SRLimit: 10})
	svc.Increment(context.Background(), vision.TierJR)

	rec, ok, err := store.Find(context.Background(), DateKey(fixedNow()))
	if err != nil || !ok {
		t.Fatalf("find record: ok=%v err=%v", ok, err)
	}
	if rec.JRUsed != 2 {
		t.Fatalf("jrUsed = %d, want 2", rec.JRUsed)
	}
	if rec.SRUsed != 3 {
		t.Fatalf("srUsed = %d, want 3 (must not move)", rec.SRUsed)
	}
}

func TestIncrementNeverPassesCeiling(t *testing.T) {
	svc, store := newServiceWithRecord(&Record{JRUsed: 4, JRLimit: 5, SRLimit: 1})
	for i := 0; i < 3; i++ {
		svc.Increment(context.Background(), vision.TierJR)
	}

	rec, _, _ := store.Find(context.Background(), DateKey(fixedNow()))
	if rec.JRUsed != 5 {
		t.Fatalf("jrUsed = %d, want 5", rec.JRUsed)
	}
}

func TestIncrementNeverDecrements(t *testing.T) {
	svc, store := newServiceWithRecord(&Record{JRUsed: 2, JRLimit: 5, SRUsed: 0, SRLimit: 1})
	before, _, _ := store.Find(context.Background(), DateKey(fixedNow()))

	svc.Increment(context.Background(), vision.TierJR)
	svc.Increment(context.Background(), vision.TierSR)

	after, _, _ := store.Find(context.Background(), DateKey(fixedNow()))
	if after.JRUsed < before.JRUsed || after.SRUsed < before.SRUsed {
		t.Fatalf("counters decreased: before=%+v after=%+v", before, after)
	}
}

func TestIncrementAbsentRecordIsNoOp(t *testing.T) {
	svc, store := newServiceWithRecord(nil)
	svc.Increment(context.Background(), vision.TierJR)

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records created, got %d", len(records))
	}
}
