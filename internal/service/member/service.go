// Package member implements the user-management operations: the member
// listing with its aggregate stats, the single-member detail view, and the
// membership status update.
package member

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

type membershipRepo interface {
	CountByStatus(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus) (int64, error)
	AverageActivePerformance(ctx context.Context, institutionID primitive.ObjectID) (float64, error)
	ListWithPerformance(ctx context.Context, institutionID primitive.ObjectID) ([]domain.MemberOverview, error)
	GetByUser(ctx context.Context, institutionID, userID primitive.ObjectID) (*domain.InstitutionMember, error)
	UpdateStatus(ctx context.Context, institutionID, userID primitive.ObjectID, status domain.MemberStatus) (*domain.InstitutionMember, error)
}

type performanceRepo interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PerformanceEntry, error)
	AverageForUser(ctx context.Context, userID primitive.ObjectID) (float64, error)
}

type contentRepo interface {
	CountNonTrashed(ctx context.Context, institutionID primitive.ObjectID) (int64, error)
}

type interactionRepo interface {
	ListRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.TimelineEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// Service implements the member-management business logic.
type Service struct {
	members      membershipRepo
	performances performanceRepo
	contents     contentRepo
	interactions interactionRepo
	users        userRepo
	log          *slog.Logger
}

// NewService creates a new Member service.
func NewService(
	log *slog.Logger,
	members membershipRepo,
	performances performanceRepo,
	contents contentRepo,
	interactions interactionRepo,
	users userRepo,
) *Service {
	return &Service{
		members:      members,
		performances: performances,
		contents:     contents,
		interactions: interactions,
		users:        users,
		log:          log.With("service", "member"),
	}
}

// notAvailable is substituted for absent optional profile and metadata
// fields so the admin UI never renders a blank cell.
const notAvailable = "N/A"

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
