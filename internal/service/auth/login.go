package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// Login authenticates a user with email + password and issues a session
// token. Returns ErrUnauthorized if the email is unknown, the user has no
// password credential, or the password is wrong. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !user.HasPassword() {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	var institutionID primitive.ObjectID
	institution, err := s.institutions.GetForAdmin(ctx, user.ID)
	switch {
	case err == nil:
		institutionID = institution.ID
	case errors.Is(err, domain.ErrNotFound):
		institution = nil
	default:
		return nil, fmt.Errorf("auth.Login resolve institution: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, institutionID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.Hex()),
		slog.Bool("has_institution", institution != nil))

	return &LoginResult{
		Token:       token,
		User:        user,
		Institution: institution,
	}, nil
}
