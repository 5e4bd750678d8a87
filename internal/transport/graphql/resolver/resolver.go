package resolver

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/internal/service/analytics"
	"github.com/lumohq/lumo-backend/internal/service/auth"
	"github.com/lumohq/lumo-backend/internal/service/content"
	"github.com/lumohq/lumo-backend/internal/service/dashboard"
	"github.com/lumohq/lumo-backend/internal/service/member"
	"github.com/lumohq/lumo-backend/internal/service/settings"
)

// userService defines what resolver needs from the User service.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
}

// dashboardService defines what resolver needs from the Dashboard service.
type dashboardService interface {
	GetStats(ctx context.Context) (dashboard.Stats, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// contentService defines what resolver needs from the Content service.
type contentService interface {
	GetStats(ctx context.Context) (content.Stats, error)
	ListModules(ctx context.Context) ([]content.Module, error)
	CreateModule(ctx context.Context, input content.CreateModuleInput) (*domain.Content, error)
	DeleteModules(ctx context.Context, ids []primitive.ObjectID) (bool, error)
	ReorderModules(ctx context.Context, orderedIDs []primitive.ObjectID) (bool, error)
}

// memberService defines what resolver needs from the Member service.
type memberService interface {
	GetManagementData(ctx context.Context) (member.ManagementData, error)
	GetUserDetail(ctx context.Context, userID primitive.ObjectID) (member.UserDetail, error)
	UpdateStatus(ctx context.Context, input member.UpdateStatusInput) (member.UpdatedMember, error)
}

// analyticsService defines what resolver needs from the Analytics service.
type analyticsService interface {
	GetData(ctx context.Context) (analytics.Data, error)
}

// settingsService defines what resolver needs from the Settings service.
type settingsService interface {
	GetData(ctx context.Context) (*domain.Institution, error)
	Update(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Institution, error)
}

// authService defines what resolver needs from the Auth service.
type authService interface {
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) (bool, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	user      userService
	dashboard dashboardService
	content   contentService
	member    memberService
	analytics analyticsService
	settings  settingsService
	auth      authService
	log       *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	user userService,
	dashboard dashboardService,
	content contentService,
	member memberService,
	analytics analyticsService,
	settings settingsService,
	auth authService,
) *Resolver {
	return &Resolver{
		user:      user,
		dashboard: dashboard,
		content:   content,
		member:    member,
		analytics: analytics,
		settings:  settings,
		auth:      auth,
		log:       log.With("component", "graphql"),
	}
}
