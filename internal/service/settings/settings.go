package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// GetData returns the caller's institution record for the settings page.
// Returns ErrUnauthorized if no institution scope is found in context.
func (s *Service) GetData(ctx context.Context) (*domain.Institution, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	institution, err := s.institutions.GetByID(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("settings.GetData: %w", err)
	}

	return institution, nil
}

// Update applies a partial settings update to the caller's institution and
// returns the updated record.
func (s *Service) Update(ctx context.Context, input UpdateSettingsInput) (*domain.Institution, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.institutions.UpdateSettings(ctx, institutionID, input.toPatch())
	if err != nil {
		return nil, fmt.Errorf("settings.Update: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("institution_id", institutionID.Hex()))

	return updated, nil
}
