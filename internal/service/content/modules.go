package content

import (
	"context"
	"fmt"
	"math"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// ListModules returns the institution's non-trashed content items ordered
// by their order field ascending, each annotated with its engagement rate.
// The rate is completions over the active-member count as a percentage,
// rounded to two decimals, and 0 when the institution has no active
// members.
func (s *Service) ListModules(ctx context.Context) ([]Module, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.contents.ListNonTrashed(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	activeMembers, err := s.members.CountByStatus(ctx, institutionID, domain.MemberActive)
	if err != nil {
		return nil, fmt.Errorf("count active members: %w", err)
	}

	modules := make([]Module, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, Module{
			ContentWithAuthor: row,
			EngagementRate:    engagementRate(row.UserEngagement.Completions, activeMembers),
		})
	}

	return modules, nil
}

func engagementRate(completions int, activeMembers int64) float64 {
	if activeMembers <= 0 {
		return 0
	}
	rate := float64(completions) / float64(activeMembers) * 100
	return math.Round(rate*100) / 100
}
