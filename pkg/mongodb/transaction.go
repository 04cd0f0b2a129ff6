package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// RunInTx runs fn inside a multi-document transaction. Repository calls made
// with the context passed to fn join the transaction. On a standalone server
// fn runs directly.
func (c *Client) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !c.transactions {
		slog.Debug("MongoDB deployment has no transaction support, running directly")
		return fn(ctx)
	}

	session, err := c.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
