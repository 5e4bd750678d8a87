// Package auth implements session login and credential changes for portal
// staff accounts.
package auth

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/config"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error
}

// institutionRepo resolves the institution a user administers, if any.
type institutionRepo interface {
	GetForAdmin(ctx context.Context, userID primitive.ObjectID) (*domain.Institution, error)
}

// jwtManager defines the session token interface needed by the auth service.
type jwtManager interface {
	GenerateSessionToken(userID, institutionID primitive.ObjectID) (string, error)
}

// Service implements auth operations.
type Service struct {
	users        userRepo
	institutions institutionRepo
	jwt          jwtManager
	cfg          config.AuthConfig
	log          *slog.Logger
}

// NewService creates a new Auth service.
func NewService(
	log *slog.Logger,
	users userRepo,
	institutions institutionRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		users:        users,
		institutions: institutions,
		jwt:          jwt,
		cfg:          cfg,
		log:          log.With("service", "auth"),
	}
}
