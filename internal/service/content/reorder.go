package content

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// ReorderModules writes each listed ID's 0-based position into its order
// field. Updates are institution-scoped and per-row idempotent; the bulk is
// not transactional, so a failed call may be partially applied and can be
// safely re-issued.
func (s *Service) ReorderModules(ctx context.Context, orderedIDs []primitive.ObjectID) (bool, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if len(orderedIDs) == 0 {
		return false, domain.NewValidationError("orderedIds", "must not be empty")
	}

	seen := make(map[primitive.ObjectID]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return false, domain.NewValidationError("orderedIds", "contains duplicate ids")
		}
		seen[id] = struct{}{}
	}

	if err := s.contents.Reorder(ctx, institutionID, orderedIDs); err != nil {
		return false, fmt.Errorf("reorder content: %w", err)
	}

	s.log.InfoContext(ctx, "content modules reordered",
		slog.String("institution_id", institutionID.Hex()),
		slog.Int("count", len(orderedIDs)),
	)

	return true, nil
}
