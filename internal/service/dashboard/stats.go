package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// statsPeriod is the trailing window the dashboard deltas are computed
// over: each change compares the current value against the state one
// period ago.
const statsPeriod = 30 * 24 * time.Hour

// GetStats returns the four dashboard headline figures for the caller's
// institution. Counts carry the growth over the trailing 30 days; the
// average-progress change compares the trailing window's mean score with
// the window before it. An institution with no performance rows gets an
// average of 0, not an error.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return Stats{}, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	periodStart := now.Add(-statsPeriod)
	prevPeriodStart := now.Add(-2 * statsPeriod)

	enrolled, err := s.members.CountByStatus(ctx, institutionID, domain.MemberActive)
	if err != nil {
		return Stats{}, fmt.Errorf("count enrolled: %w", err)
	}
	enrolledBefore, err := s.members.CountByStatusCreatedBefore(ctx, institutionID, domain.MemberActive, periodStart)
	if err != nil {
		return Stats{}, fmt.Errorf("count enrolled before period: %w", err)
	}

	pending, err := s.members.CountByStatus(ctx, institutionID, domain.MemberPending)
	if err != nil {
		return Stats{}, fmt.Errorf("count pending: %w", err)
	}
	pendingBefore, err := s.members.CountByStatusCreatedBefore(ctx, institutionID, domain.MemberPending, periodStart)
	if err != nil {
		return Stats{}, fmt.Errorf("count pending before period: %w", err)
	}

	published, err := s.contents.CountPublished(ctx, institutionID)
	if err != nil {
		return Stats{}, fmt.Errorf("count published: %w", err)
	}
	publishedBefore, err := s.contents.CountPublishedCreatedBefore(ctx, institutionID, periodStart)
	if err != nil {
		return Stats{}, fmt.Errorf("count published before period: %w", err)
	}

	average, err := s.performances.AverageByMembership(ctx, institutionID)
	if err != nil {
		return Stats{}, fmt.Errorf("average progress: %w", err)
	}
	currentWindow, err := s.performances.AverageByMembershipBetween(ctx, institutionID, periodStart, now)
	if err != nil {
		return Stats{}, fmt.Errorf("average progress current window: %w", err)
	}
	previousWindow, err := s.performances.AverageByMembershipBetween(ctx, institutionID, prevPeriodStart, periodStart)
	if err != nil {
		return Stats{}, fmt.Errorf("average progress previous window: %w", err)
	}

	stats := Stats{
		EnrolledUsers:    CountStat{Value: enrolled, Change: enrolled - enrolledBefore},
		PendingUsers:     CountStat{Value: pending, Change: pending - pendingBefore},
		PublishedContent: CountStat{Value: published, Change: published - publishedBefore},
		AverageProgress:  ScoreStat{Value: average, Change: currentWindow - previousWindow},
	}

	s.log.InfoContext(ctx, "dashboard stats computed",
		slog.String("institution_id", institutionID.Hex()),
		slog.Int64("enrolled", enrolled),
		slog.Int64("pending", pending),
		slog.Int64("published", published),
		slog.Float64("average_progress", average),
	)

	return stats, nil
}
