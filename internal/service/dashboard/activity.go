package dashboard

import (
	"context"
	"fmt"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// DefaultActivityLimit is used when the caller does not specify a limit.
const DefaultActivityLimit = 5

// RecentActivity returns the institution's most recent member interaction
// events, newest first. An institution with no members short-circuits to an
// empty feed without touching the interaction store, so an empty ID filter
// can never match foreign documents. Events whose user or content no longer
// resolves are dropped by the join rather than failing the feed.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	userIDs, err := s.members.ListUserIDs(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("list member ids: %w", err)
	}
	if len(userIDs) == 0 {
		return []domain.ActivityEntry{}, nil
	}

	entries, err := s.interactions.ListRecentByUsers(ctx, userIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent interactions: %w", err)
	}

	return entries, nil
}
