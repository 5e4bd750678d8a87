package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumohq/lumo-backend/internal/config"
	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

//go:generate moq -out deps_mock_test.go -pkg auth . userRepo institutionRepo jwtManager

const testPassword = "correct horse battery"

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func newTestService(users *userRepoMock, institutions *institutionRepoMock, jwt *jwtManagerMock) *Service {
	return &Service{
		users:        users,
		institutions: institutions,
		jwt:          jwt,
		cfg:          config.AuthConfig{BcryptCost: bcrypt.MinCost},
		log:          slog.Default(),
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	institutionID := primitive.NewObjectID()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			assert.Equal(t, "admin@acme.edu", email)
			return &domain.User{ID: userID, Email: email, PasswordHash: hashOf(t, testPassword)}, nil
		},
	}
	institutions := &institutionRepoMock{
		GetForAdminFunc: func(ctx context.Context, uid primitive.ObjectID) (*domain.Institution, error) {
			assert.Equal(t, userID, uid)
			return &domain.Institution{ID: institutionID, Name: "Acme University"}, nil
		},
	}
	jwt := &jwtManagerMock{
		GenerateSessionTokenFunc: func(uid, instID primitive.ObjectID) (string, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, institutionID, instID)
			return "signed-token", nil
		},
	}

	svc := newTestService(users, institutions, jwt)

	// Email is normalized before lookup.
	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Admin@Acme.edu ",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, userID, result.User.ID)
	require.NotNil(t, result.Institution)
	assert.Equal(t, institutionID, result.Institution.ID)
}

func TestLogin_NoInstitution(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: userID, Email: email, PasswordHash: hashOf(t, testPassword)}, nil
		},
	}
	institutions := &institutionRepoMock{
		GetForAdminFunc: func(ctx context.Context, uid primitive.ObjectID) (*domain.Institution, error) {
			return nil, domain.ErrNotFound
		},
	}
	jwt := &jwtManagerMock{
		GenerateSessionTokenFunc: func(uid, instID primitive.ObjectID) (string, error) {
			assert.True(t, instID.IsZero())
			return "scopeless-token", nil
		},
	}

	svc := newTestService(users, institutions, jwt)

	result, err := svc.Login(context.Background(), LoginInput{Email: "solo@acme.edu", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "scopeless-token", result.Token)
	assert.Nil(t, result.Institution)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@acme.edu", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: primitive.NewObjectID(), Email: email, PasswordHash: hashOf(t, testPassword)}, nil
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@acme.edu", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_NoPasswordCredential(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: primitive.NewObjectID(), Email: email}, nil
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "oauth@acme.edu", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(&userRepoMock{}, &institutionRepoMock{}, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChangePassword_Success(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id, PasswordHash: hashOf(t, testPassword)}, nil
		},
		UpdatePasswordHashFunc: func(ctx context.Context, id primitive.ObjectID, hash string) error {
			assert.Equal(t, userID, id)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new password 123")))
			return nil
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	ok, err := svc.ChangePassword(ctxutil.WithUserID(context.Background(), userID), ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "new password 123",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, users.UpdatePasswordHashCalls(), 1)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id, PasswordHash: hashOf(t, testPassword)}, nil
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	ok, err := svc.ChangePassword(ctxutil.WithUserID(context.Background(), primitive.NewObjectID()), ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new password 123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, ok)
	// The stored hash must be untouched on failure.
	assert.Empty(t, users.UpdatePasswordHashCalls())
}

func TestChangePassword_NoStoredHash(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}

	svc := newTestService(users, &institutionRepoMock{}, &jwtManagerMock{})

	ok, err := svc.ChangePassword(ctxutil.WithUserID(context.Background(), primitive.NewObjectID()), ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "new password 123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, ok)
	assert.Empty(t, users.UpdatePasswordHashCalls())
}

func TestChangePassword_TooShort(t *testing.T) {
	t.Parallel()

	svc := newTestService(&userRepoMock{}, &institutionRepoMock{}, &jwtManagerMock{})

	ok, err := svc.ChangePassword(ctxutil.WithUserID(context.Background(), primitive.NewObjectID()), ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, ok)
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&userRepoMock{}, &institutionRepoMock{}, &jwtManagerMock{})

	ok, err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "new password 123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, ok)
}
