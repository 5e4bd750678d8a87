// Package dataloader provides per-request DataLoaders for batching GraphQL
// field resolver queries into single database calls. The user loader backs
// the Institution.owner/admins/members fields, which would otherwise issue
// one lookup per referenced user.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User userRepo
}

// Loaders contains the per-request DataLoader instances.
type Loaders struct {
	UserByID *dataloader.Loader[primitive.ObjectID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given
// repositories. Must be called per-request (loaders cache results within a
// single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID: newLoader(newUserBatchFn(repos.User)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[primitive.ObjectID, V]) *dataloader.Loader[primitive.ObjectID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[primitive.ObjectID, V](wait),
		dataloader.WithBatchCapacity[primitive.ObjectID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
