// Package analytics computes the derived views over an institution's full
// performance history: overview stats, the per-content breakdown, and the
// user segmentation buckets.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

type membershipRepo interface {
	ListUserIDs(ctx context.Context, institutionID primitive.ObjectID) ([]primitive.ObjectID, error)
	ActiveMemberAverages(ctx context.Context, institutionID primitive.ObjectID) ([]domain.MemberScore, error)
}

type performanceRepo interface {
	InstitutionSummary(ctx context.Context, institutionID primitive.ObjectID) (domain.PerformanceSummary, error)
	StatsByContent(ctx context.Context, institutionID primitive.ObjectID) (map[primitive.ObjectID]domain.ContentPerformance, error)
}

type contentRepo interface {
	ListNonTrashed(ctx context.Context, institutionID primitive.ObjectID) ([]domain.ContentWithAuthor, error)
}

type interactionRepo interface {
	CountActiveSince(ctx context.Context, userIDs []primitive.ObjectID, since time.Time) (int64, error)
}

// Service implements the analytics rollup.
type Service struct {
	members      membershipRepo
	performances performanceRepo
	contents     contentRepo
	interactions interactionRepo
	log          *slog.Logger
}

// NewService creates a new Analytics service.
func NewService(
	log *slog.Logger,
	members membershipRepo,
	performances performanceRepo,
	contents contentRepo,
	interactions interactionRepo,
) *Service {
	return &Service{
		members:      members,
		performances: performances,
		contents:     contents,
		interactions: interactions,
		log:          log.With("service", "analytics"),
	}
}
