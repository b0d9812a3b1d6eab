// Package mongodb holds the MongoDB connection, transaction and error-mapping
// helpers shared by the skill and module repositories.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/skilltracker-backend/internal/config"
)

// Collection names.
const (
	SkillsCollection  = "skills"
	ModulesCollection = "modules"
)

// NewClient connects to MongoDB using DatabaseConfig and pings the primary
// for fail-fast validation. The caller owns Disconnect.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// Pinger adapts a client to the health handler's Ping(ctx) contract.
type Pinger struct {
	client *mongo.Client
}

// NewPinger creates a Pinger for the given client.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping checks that the primary is reachable.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
