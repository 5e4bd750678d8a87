// Package user serves the authenticated user's own profile.
package user

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}
