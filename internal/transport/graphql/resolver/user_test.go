package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

func TestMe_Success(t *testing.T) {
	t.Parallel()

	me := &domain.User{ID: primitive.NewObjectID(), Name: "Jamie Reyes", Email: "jamie@acme.edu"}
	mock := &userServiceMock{
		MeFunc: func(ctx context.Context) (*domain.User, error) {
			return me, nil
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	result, err := resolver.Me(authedCtx())

	require.NoError(t, err)
	require.Equal(t, me, result)
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		MeFunc: func(ctx context.Context) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	_, err := resolver.Me(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
