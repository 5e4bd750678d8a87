package content

import (
	"context"
	"fmt"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// GetStats returns the institution's aggregate content figures: total
// non-trashed items, published items, and the mean understanding score
// across every performance row attached to the institution's content
// (0 when no rows exist).
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return Stats{}, domain.ErrUnauthorized
	}

	total, err := s.contents.CountNonTrashed(ctx, institutionID)
	if err != nil {
		return Stats{}, fmt.Errorf("count content: %w", err)
	}

	published, err := s.contents.CountPublished(ctx, institutionID)
	if err != nil {
		return Stats{}, fmt.Errorf("count published: %w", err)
	}

	avg, err := s.performances.AverageByContent(ctx, institutionID)
	if err != nil {
		return Stats{}, fmt.Errorf("average engagement: %w", err)
	}

	return Stats{
		TotalContent:     total,
		PublishedContent: published,
		AvgEngagement:    avg,
	}, nil
}
