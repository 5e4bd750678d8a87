package content

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// DeleteModules moves the listed content items to the trash. Every write is
// scoped to the caller's institution, so IDs from another tenant match
// nothing. Returns true when at least one item was modified.
func (s *Service) DeleteModules(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if len(ids) == 0 {
		return false, domain.NewValidationError("ids", "must not be empty")
	}

	modified, err := s.contents.SoftDeleteMany(ctx, institutionID, ids)
	if err != nil {
		return false, fmt.Errorf("soft delete content: %w", err)
	}

	s.log.InfoContext(ctx, "content modules trashed",
		slog.String("institution_id", institutionID.Hex()),
		slog.Int("requested", len(ids)),
		slog.Int64("modified", modified),
	)

	return modified > 0, nil
}
