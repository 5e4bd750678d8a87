// Package settings serves the institution profile: the settings page read
// and the partial branding/contact update.
package settings

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// institutionRepo defines the institution repository interface needed by
// the settings service.
type institutionRepo interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Institution, error)
	UpdateSettings(ctx context.Context, id primitive.ObjectID, patch domain.SettingsPatch) (*domain.Institution, error)
}

// Service implements institution settings operations.
type Service struct {
	institutions institutionRepo
	log          *slog.Logger
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, institutions institutionRepo) *Service {
	return &Service{
		institutions: institutions,
		log:          log.With("service", "settings"),
	}
}
