package member

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// detailActivityLimit caps the recent-events timeline in the detail view.
const detailActivityLimit = 10

// GetUserDetail returns the full profile view of one member. A user with no
// membership in the caller's institution yields ErrNotFound, never
// ErrForbidden, so out-of-tenant probes cannot confirm a user exists. The
// three independent data sets (performance rows, content count, recent
// events) are fetched concurrently.
func (s *Service) GetUserDetail(ctx context.Context, userID primitive.ObjectID) (UserDetail, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return UserDetail{}, domain.ErrUnauthorized
	}

	membership, err := s.members.GetByUser(ctx, institutionID, userID)
	if err != nil {
		return UserDetail{}, fmt.Errorf("get membership: %w", err)
	}

	var (
		user         *domain.User
		entries      []domain.PerformanceEntry
		totalModules int64
		timeline     []domain.TimelineEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.performances.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list performance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalModules, err = s.contents.CountNonTrashed(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("count content: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		timeline, err = s.interactions.ListRecentByUser(gctx, userID, detailActivityLimit)
		if err != nil {
			return fmt.Errorf("list recent events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return UserDetail{}, err
	}

	var (
		totalTime int64
		mastered  int64
		scoreSum  float64
	)
	for _, e := range entries {
		totalTime += e.TotalTimeSeconds
		scoreSum += e.UnderstandingScore
		if e.UnderstandingLevel == domain.UnderstandingMastered {
			mastered++
		}
	}
	averageScore := 0.0
	if len(entries) > 0 {
		averageScore = math.Round(scoreSum / float64(len(entries)))
	}

	detail := UserDetail{
		UserID:           user.ID,
		Name:             user.Name,
		Email:            user.Email,
		ProfileImage:     user.ProfileImage,
		Phone:            orNA(user.Phone),
		Address:          orNA(user.Address),
		BusinessName:     orNA(membership.Metadata.BusinessName),
		TIN:              orNA(membership.Metadata.TIN),
		Status:           membership.Status,
		RegistrationDate: membership.CreatedAt,
		TotalModules:     totalModules,
		MasteredModules:  mastered,
		AverageScore:     averageScore,
		TotalTimeSeconds: totalTime,
		Performance:      entries,
		RecentActivity:   timeline,
	}

	return detail, nil
}
