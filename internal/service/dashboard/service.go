// Package dashboard computes the admin dashboard headline statistics and
// the recent member-activity feed.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

type membershipRepo interface {
	CountByStatus(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus) (int64, error)
	CountByStatusCreatedBefore(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus, before time.Time) (int64, error)
	ListUserIDs(ctx context.Context, institutionID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type contentRepo interface {
	CountPublished(ctx context.Context, institutionID primitive.ObjectID) (int64, error)
	CountPublishedCreatedBefore(ctx context.Context, institutionID primitive.ObjectID, before time.Time) (int64, error)
}

type performanceRepo interface {
	AverageByMembership(ctx context.Context, institutionID primitive.ObjectID) (float64, error)
	AverageByMembershipBetween(ctx context.Context, institutionID primitive.ObjectID, from, to time.Time) (float64, error)
}

type interactionRepo interface {
	ListRecentByUsers(ctx context.Context, userIDs []primitive.ObjectID, limit int) ([]domain.ActivityEntry, error)
}

// Service implements the dashboard aggregation logic.
type Service struct {
	members      membershipRepo
	contents     contentRepo
	performances performanceRepo
	interactions interactionRepo
	log          *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	members membershipRepo,
	contents contentRepo,
	performances performanceRepo,
	interactions interactionRepo,
) *Service {
	return &Service{
		members:      members,
		contents:     contents,
		performances: performances,
		interactions: interactions,
		log:          log.With("service", "dashboard"),
	}
}
