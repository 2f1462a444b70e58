package mongodb

import (
	"context"
	"errors"
	"testing"
)

func TestDatabaseBeforeConnect(t *testing.T) {
	g := NewGateway("mongodb://localhost:27017", "pathoai")
	if _, err := g.Database(); !errors.Is(err, ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized, got %v", err)
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	g := NewGateway("mongodb://localhost:27017", "pathoai")
	ctx := context.Background()

	if err := g.Connect(ctx); err != nil {
		t.Fatalf("first connect: %v", err)
	}
	db1, err := g.Database()
	if err != nil {
		t.Fatalf("database after connect: %v", err)
	}

	if err := g.Connect(ctx); err != nil {
		t.Fatalf("second connect: %v", err)
	}
	db2, err := g.Database()
	if err != nil {
		t.Fatalf("database after second connect: %v", err)
	}
	if db1 != db2 {
		t.Fatalf("expected the same handle after repeated connect")
	}

	if err := g.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
}

func TestDisconnectIsIdempotent(t *testing.T) {
	g := NewGateway("mongodb://localhost:27017", "pathoai")
	ctx := context.Background()

	if err := g.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := g.Disconnect(ctx); err != nil {
		t.Fatalf("first disconnect: %v", err)
	}
	if err := g.Disconnect(ctx); err != nil {
		t.Fatalf("second disconnect: %v", err)
	}
	if _, err := g.Database(); !errors.Is(err, ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized after disconnect, got %v", err)
	}
}
