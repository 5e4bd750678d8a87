// Package testhelper provides a shared MongoDB container and seeding
// helpers for repository integration tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestDB starts a shared MongoDB container (once for the entire test
// run) and returns a uniquely named database on it, so parallel tests never
// share collections. The client is disconnected and the database dropped
// via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("testhelper: failed to ping: %v", err)
	}

	db := client.Database("testdb_" + primitive.NewObjectID().Hex())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection string: %w", err)
	}

	return uri, nil
}
