// Package content implements the content-module operations: aggregate
// statistics, the ordered listing, and the three institution-scoped writes
// (create, bulk soft-delete, reorder).
package content

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

type contentRepo interface {
	CountPublished(ctx context.Context, institutionID primitive.ObjectID) (int64, error)
	CountNonTrashed(ctx context.Context, institutionID primitive.ObjectID) (int64, error)
	ListNonTrashed(ctx context.Context, institutionID primitive.ObjectID) ([]domain.ContentWithAuthor, error)
	HighestOrder(ctx context.Context, institutionID primitive.ObjectID) (int, bool, error)
	Insert(ctx context.Context, c domain.Content) (*domain.Content, error)
	SoftDeleteMany(ctx context.Context, institutionID primitive.ObjectID, ids []primitive.ObjectID) (int64, error)
	Reorder(ctx context.Context, institutionID primitive.ObjectID, orderedIDs []primitive.ObjectID) error
}

type membershipRepo interface {
	CountByStatus(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus) (int64, error)
}

type performanceRepo interface {
	AverageByContent(ctx context.Context, institutionID primitive.ObjectID) (float64, error)
}

// Service implements the content business logic.
type Service struct {
	contents     contentRepo
	members      membershipRepo
	performances performanceRepo
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a new Content service.
func NewService(
	log *slog.Logger,
	contents contentRepo,
	members membershipRepo,
	performances performanceRepo,
) *Service {
	return &Service{
		contents:     contents,
		members:      members,
		performances: performances,
		log:          log.With("service", "content"),
		now:          time.Now,
	}
}
