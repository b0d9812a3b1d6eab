package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxManager runs callbacks inside multi-document transactions.
// Transactions need a replica set; when disabled, RunInTx calls fn directly
// and each store operation is atomic on its own.
type TxManager struct {
	client  *mongo.Client
	enabled bool
}

// NewTxManager creates a new TxManager.
func NewTxManager(client *mongo.Client, enabled bool) *TxManager {
	return &TxManager{client: client, enabled: enabled}
}

// RunInTx executes fn within a transaction. The context passed to fn is a
// session context; repositories must use it for their calls to join the
// transaction. The driver may retry fn on transient transaction errors.
// On error from fn the transaction is aborted and the error is returned as-is.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.enabled || m.client == nil {
		return fn(ctx)
	}

	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
