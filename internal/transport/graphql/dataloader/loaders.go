package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// newUserBatchFn batches user lookups by ID. Missing users resolve to nil
// rather than an error: a dangling reference (deleted user still listed on
// an institution) drops the row instead of failing the whole query.
func newUserBatchFn(repo userRepo) dataloader.BatchFunc[primitive.ObjectID, *domain.User] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[primitive.ObjectID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
