package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// CreateModule creates a new draft content module at the end of the
// institution's ordering: highest existing order + 1, or 0 when the
// institution has no content yet.
func (s *Service) CreateModule(ctx context.Context, input CreateModuleInput) (*domain.Content, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	order := 0
	highest, exists, err := s.contents.HighestOrder(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("find highest order: %w", err)
	}
	if exists {
		order = highest + 1
	}

	item := domain.Content{
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Tags:          input.Tags,
		IsDraft:       true,
		IsTrash:       false,
		Order:         order,
		InstitutionID: institutionID,
		CreatedBy:     userID,
		CreatedAt:     s.now().UTC(),
	}

	created, err := s.contents.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert content: %w", err)
	}

	s.log.InfoContext(ctx, "content module created",
		slog.String("institution_id", institutionID.Hex()),
		slog.String("content_id", created.ID.Hex()),
		slog.Int("order", created.Order),
	)

	return created, nil
}
