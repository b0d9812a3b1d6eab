// Package testhelper starts a shared MongoDB container for repository tests.
package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
	dbSeq     atomic.Int64
)

// SetupTestDB starts a shared single-node replica set (once for the entire
// test run) and returns a fresh database with indexes applied. Every call gets
// its own database, so tests may run in parallel. The client is disconnected
// and the database dropped via t.Cleanup.
func SetupTestDB(t *testing.T) (*mongo.Client, *mongo.Database) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}

	db := client.Database(databaseName(t))
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("testhelper: failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return client, db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := tcmongo.Run(ctx, "mongo:7", tcmongo.WithReplicaSet("rs0"))
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection string: %w", err)
	}

	return uri, nil
}

// databaseName derives a short unique database name; MongoDB limits names
// to 63 bytes and rejects '/', '.', ' ' and a few other characters.
func databaseName(t *testing.T) string {
	name := strings.NewReplacer("/", "_", ".", "_", " ", "_", "$", "_", "\"", "_").Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("t%d_%s", dbSeq.Add(1), name)
}
