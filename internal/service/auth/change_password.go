package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// ChangePassword replaces the caller's password after verifying the
// current one. Accounts without a stored hash (OAuth-only) cannot change a
// password here. The stored hash is untouched on any failure.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if !user.HasPassword() {
		return false, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return false, domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return false, fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return false, fmt.Errorf("auth.ChangePassword store hash: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.Hex()))

	return true, nil
}
