package member

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// UpdateStatusInput carries a membership status change.
type UpdateStatusInput struct {
	UserID primitive.ObjectID
	Status domain.MemberStatus
}

// Validate checks the input fields. Only activation and revocation are
// admin-settable; the pending state is entered by registration alone.
func (in UpdateStatusInput) Validate() error {
	if in.UserID.IsZero() {
		return domain.NewValidationError("userId", "must not be empty")
	}
	if in.Status != domain.MemberActive && in.Status != domain.MemberRevoked {
		return domain.NewValidationError("status", "must be active or revoked")
	}
	return nil
}

// UpdateStatus sets the membership status for the target user and returns
// the updated membership merged with the user's profile and a freshly
// recomputed average score. A user with no membership in the caller's
// institution yields ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (UpdatedMember, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return UpdatedMember{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return UpdatedMember{}, err
	}

	membership, err := s.members.UpdateStatus(ctx, institutionID, input.UserID, input.Status)
	if err != nil {
		return UpdatedMember{}, fmt.Errorf("update status: %w", err)
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return UpdatedMember{}, fmt.Errorf("get user: %w", err)
	}

	average, err := s.performances.AverageForUser(ctx, input.UserID)
	if err != nil {
		return UpdatedMember{}, fmt.Errorf("average performance: %w", err)
	}

	s.log.InfoContext(ctx, "membership status updated",
		slog.String("institution_id", institutionID.Hex()),
		slog.String("user_id", input.UserID.Hex()),
		slog.String("status", string(membership.Status)),
	)

	return UpdatedMember{
		UserID:             user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Status:             membership.Status,
		AveragePerformance: average,
	}, nil
}
