package resolver

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/dataloader"
)

func (r *institutionResolver) loadUsers(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	loaders := dataloader.FromContext(ctx)
	thunks := make([]func() (*domain.User, error), len(ids))
	for i, id := range ids {
		thunks[i] = loaders.UserByID.Load(ctx, id)
	}

	users := make([]domain.User, 0, len(ids))
	for _, thunk := range thunks {
		user, err := thunk()
		if err != nil {
			return nil, fmt.Errorf("load users: %w", err)
		}
		if user != nil {
			users = append(users, *user)
		}
	}
	return users, nil
}
