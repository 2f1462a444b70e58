package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/just-manoj/PathoAi-API/internal/shared/telemetry"
)

// ErrUninitialized is returned when the database handle is requested
// before Connect has been called.
var ErrUninitialized = errors.New("database client not initialized")

// Gateway owns the MongoDB client for the process. It is constructed once
// and injected into every store that needs the database handle.
type Gateway struct {
	mu   sync.Mutex
	uri  string
	name string

	client *mongo.Client
	db     *mongo.Database
}

// NewGateway binds a gateway to a connection string and logical database
// name without opening anything.
func NewGateway(uri, name string) *Gateway {
	return &Gateway{uri: uri, name: name}
}

// Connect constructs the client on first call and is a no-op afterwards.
// No network round-trip happens here; server selection is deferred to the
// first real operation, so connectivity errors surface there.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(g.uri))
	if err != nil {
		return fmt.Errorf("construct mongo client: %w", err)
	}
	g.client = client
	g.db = client.Database(g.name)

	telemetry.Info("mongo.client_created", map[string]any{"database": g.name})
	return nil
}

// Disconnect releases the client if present. Idempotent.
func (g *Gateway) Disconnect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Disconnect(ctx)
	g.client = nil
	g.db = nil
	if err != nil {
		return fmt.Errorf("disconnect mongo client: %w", err)
	}
	telemetry.Info("mongo.client_closed", map[string]any{"database": g.name})
	return nil
}

// Database returns the active handle, or ErrUninitialized when Connect
// was never called. Callers treat the error as fatal for the current
// request, not for the process.
func (g *Gateway) Database() (*mongo.Database, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil, ErrUninitialized
	}
	return g.db, nil
}
