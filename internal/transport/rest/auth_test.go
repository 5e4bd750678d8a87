package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/internal/service/auth"
)

type authServiceMock struct {
	loginFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.loginFunc(ctx, input)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	instID := primitive.NewObjectID()
	svc := &authServiceMock{
		loginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			if input.Email != "admin@acme.edu" {
				t.Errorf("unexpected email %q", input.Email)
			}
			return &auth.LoginResult{
				Token:       "session-token",
				User:        &domain.User{ID: userID, Name: "Jamie Reyes", Email: "admin@acme.edu"},
				Institution: &domain.Institution{ID: instID, Name: "Acme Academy"},
			}, nil
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := strings.NewReader(`{"email":"admin@acme.edu","password":"hunter2aa"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Token != "session-token" {
		t.Errorf("expected token 'session-token', got %q", resp.Token)
	}
	if resp.User.ID != userID.Hex() {
		t.Errorf("expected user id %q, got %q", userID.Hex(), resp.User.ID)
	}
	if resp.Institution == nil || resp.Institution.Name != "Acme Academy" {
		t.Errorf("expected institution 'Acme Academy', got %+v", resp.Institution)
	}
}

func TestLogin_NoInstitution(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		loginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			return &auth.LoginResult{
				Token: "scopeless-token",
				User:  &domain.User{ID: primitive.NewObjectID(), Name: "Jamie Reyes", Email: "admin@acme.edu"},
			}, nil
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := strings.NewReader(`{"email":"admin@acme.edu","password":"hunter2aa"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Institution != nil {
		t.Errorf("expected no institution, got %+v", resp.Institution)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		loginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := strings.NewReader(`{"email":"admin@acme.edu","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestLogin_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		loginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLogin_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		loginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			return nil, domain.NewValidationError("email", "required")
		},
	}

	h := NewAuthHandler(svc, slog.Default())

	body := strings.NewReader(`{"email":"","password":""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
