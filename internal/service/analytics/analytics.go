package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// Segmentation bucket labels and score bounds. Both bounds are inclusive
// lower bounds: an average of exactly 85 is a high performer, exactly 60 is
// average progress. Members with no performance rows at all are inactive,
// regardless of recent interaction events.
const (
	SegmentHighPerformers  = "High Performers"
	SegmentAverageProgress = "Average Progress"
	SegmentStruggling      = "Struggling Users"
	SegmentInactive        = "Inactive Users"

	highPerformerMinScore   = 85.0
	averageProgressMinScore = 60.0
)

// activeLearnerWindow is the trailing window for the active-learner count:
// a learner is active if they generated at least one interaction event in
// it. This is a different notion than the Inactive segmentation bucket,
// which is about lifetime performance-row presence.
const activeLearnerWindow = 30 * 24 * time.Hour

// GetData computes the full analytics payload. The four independent data
// sets (institution summary, per-content stats joined with the listing,
// per-member averages, 30-day active learners) are fetched concurrently.
func (s *Service) GetData(ctx context.Context) (Data, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return Data{}, domain.ErrUnauthorized
	}

	var (
		summary        domain.PerformanceSummary
		contents       []domain.ContentWithAuthor
		statsByContent map[primitive.ObjectID]domain.ContentPerformance
		memberScores   []domain.MemberScore
		activeLearners int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.performances.InstitutionSummary(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("institution summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		contents, err = s.contents.ListNonTrashed(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("list content: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		statsByContent, err = s.performances.StatsByContent(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("stats by content: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		memberScores, err = s.members.ActiveMemberAverages(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("member averages: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		userIDs, err := s.members.ListUserIDs(gctx, institutionID)
		if err != nil {
			return fmt.Errorf("list member ids: %w", err)
		}
		activeLearners, err = s.interactions.CountActiveSince(gctx, userIDs, time.Now().UTC().Add(-activeLearnerWindow))
		if err != nil {
			return fmt.Errorf("count active learners: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	overview := Overview{
		AvgEngagement:     round2(summary.AverageScore),
		ActiveLearners30d: activeLearners,
		AvgStudyHours:     round2(summary.AverageTimeSeconds / 3600),
	}
	if summary.TotalRows > 0 {
		overview.CompletionRate = round2(float64(summary.MasteredRows) / float64(summary.TotalRows) * 100)
	}

	breakdown := make([]ContentBreakdownRow, 0, len(contents))
	for _, c := range contents {
		row := ContentBreakdownRow{
			ContentID: c.ID,
			Title:     c.Title,
		}
		if stats, found := statsByContent[c.ID]; found {
			row.EnrolledUsers = stats.EnrolledUsers
			row.AverageScore = round2(stats.AverageScore)
			row.AverageTimeSeconds = round2(stats.AverageTimeSeconds)
			if stats.EnrolledUsers > 0 {
				row.CompletionRate = round2(float64(stats.MasteredUsers) / float64(stats.EnrolledUsers) * 100)
			}
		}
		breakdown = append(breakdown, row)
	}

	return Data{
		Overview:         overview,
		ContentBreakdown: breakdown,
		UserSegmentation: segment(memberScores),
	}, nil
}

// segment buckets each active member by their lifetime average score. The
// buckets are exhaustive and mutually exclusive: every member lands in
// exactly one.
func segment(scores []domain.MemberScore) []Segment {
	var high, average, struggling, inactive int64
	for _, sc := range scores {
		switch {
		case sc.Average == nil:
			inactive++
		case *sc.Average >= highPerformerMinScore:
			high++
		case *sc.Average >= averageProgressMinScore:
			average++
		default:
			struggling++
		}
	}

	total := int64(len(scores))
	pct := func(count int64) float64 {
		if total == 0 {
			return 0
		}
		return round2(float64(count) / float64(total) * 100)
	}

	return []Segment{
		{Label: SegmentHighPerformers, Count: high, Percentage: pct(high)},
		{Label: SegmentAverageProgress, Count: average, Percentage: pct(average)},
		{Label: SegmentStruggling, Count: struggling, Percentage: pct(struggling)},
		{Label: SegmentInactive, Count: inactive, Percentage: pct(inactive)},
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
