// Package persistence implements the domain repository interfaces on top of
// the MongoDB document store.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/infrastructure/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionBooks          = "books"
	CollectionAuthors        = "authors"
	CollectionCategories     = "categories"
	CollectionUsers          = "users"
	CollectionFriendRequests = "friendRequests"
	CollectionNotifications  = "notifications"
	CollectionTokens         = "tokens"
)

// Database wraps the mongo client and the application database handle
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDatabase connects to the document store and verifies the connection
func NewDatabase(ctx context.Context, cfg *config.MongoConfig) (*Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to a named collection
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping verifies the connection is still alive
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the document store
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// mapError converts driver errors to domain errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return shared.ErrNotFound
	}
	return err
}
