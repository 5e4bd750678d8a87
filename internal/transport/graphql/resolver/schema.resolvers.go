package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"
	"fmt"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/internal/service/analytics"
	"github.com/lumohq/lumo-backend/internal/service/auth"
	"github.com/lumohq/lumo-backend/internal/service/content"
	"github.com/lumohq/lumo-backend/internal/service/dashboard"
	"github.com/lumohq/lumo-backend/internal/service/member"
	"github.com/lumohq/lumo-backend/internal/service/settings"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/dataloader"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/generated"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType is the resolver for the eventType field.
func (r *activityEntryResolver) EventType(ctx context.Context, obj *domain.ActivityEntry) (string, error) {
	panic(fmt.Errorf("not implemented: EventType - eventType"))
}

// SubscriptionStatus is the resolver for the subscriptionStatus field.
func (r *institutionResolver) SubscriptionStatus(ctx context.Context, obj *domain.Institution) (string, error) {
	panic(fmt.Errorf("not implemented: SubscriptionStatus - subscriptionStatus"))
}

// Owner is the resolver for the owner field.
func (r *institutionResolver) Owner(ctx context.Context, obj *domain.Institution) (*domain.User, error) {
	user, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.Owner)()
	if err != nil {
		return nil, fmt.Errorf("load owner: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// Admins is the resolver for the admins field.
func (r *institutionResolver) Admins(ctx context.Context, obj *domain.Institution) ([]domain.User, error) {
	return r.loadUsers(ctx, obj.Admins)
}

// Members is the resolver for the members field.
func (r *institutionResolver) Members(ctx context.Context, obj *domain.Institution) ([]domain.User, error) {
	return r.loadUsers(ctx, obj.Members)
}

// Status is the resolver for the status field.
func (r *managedUserResolver) Status(ctx context.Context, obj *member.ManagedMember) (string, error) {
	panic(fmt.Errorf("not implemented: Status - status"))
}

// UnderstandingLevel is the resolver for the understandingLevel field.
func (r *modulePerformanceResolver) UnderstandingLevel(ctx context.Context, obj *domain.PerformanceEntry) (string, error) {
	panic(fmt.Errorf("not implemented: UnderstandingLevel - understandingLevel"))
}

// CreateContentModule is the resolver for the createContentModule field.
func (r *mutationResolver) CreateContentModule(ctx context.Context, input content.CreateModuleInput) (*content.Module, error) {
	created, err := r.content.CreateModule(ctx, input)
	if err != nil {
		return nil, err
	}

	// The caller is the author; fetch their name for the listing shape.
	author, err := r.user.Me(ctx)
	if err != nil {
		return nil, err
	}

	return &content.Module{
		ContentWithAuthor: domain.ContentWithAuthor{
			Content:    *created,
			AuthorName: author.Name,
		},
	}, nil
}

// DeleteContentModules is the resolver for the deleteContentModules field.
func (r *mutationResolver) DeleteContentModules(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	return r.content.DeleteModules(ctx, ids)
}

// UpdateContentOrder is the resolver for the updateContentOrder field.
func (r *mutationResolver) UpdateContentOrder(ctx context.Context, orderedIds []primitive.ObjectID) (bool, error) {
	return r.content.ReorderModules(ctx, orderedIds)
}

// UpdateUserStatus is the resolver for the updateUserStatus field.
func (r *mutationResolver) UpdateUserStatus(ctx context.Context, input member.UpdateStatusInput) (*member.UpdatedMember, error) {
	updated, err := r.member.UpdateStatus(ctx, input)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateSettings is the resolver for the updateSettings field.
func (r *mutationResolver) UpdateSettings(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Institution, error) {
	return r.settings.Update(ctx, input)
}

// ChangePassword is the resolver for the changePassword field.
func (r *mutationResolver) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) (bool, error) {
	return r.auth.ChangePassword(ctx, input)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	return r.user.Me(ctx)
}

// MyInstitution is the resolver for the myInstitution field.
func (r *queryResolver) MyInstitution(ctx context.Context) (*domain.Institution, error) {
	return r.settings.GetData(ctx)
}

// GetDashboardStats is the resolver for the getDashboardStats field.
func (r *queryResolver) GetDashboardStats(ctx context.Context) (*dashboard.Stats, error) {
	stats, err := r.dashboard.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetRecentActivity is the resolver for the getRecentActivity field.
func (r *queryResolver) GetRecentActivity(ctx context.Context, limit *int) ([]domain.ActivityEntry, error) {
	n := dashboard.DefaultActivityLimit
	if limit != nil && *limit > 0 {
		n = *limit
	}
	return r.dashboard.RecentActivity(ctx, n)
}

// GetContentStats is the resolver for the getContentStats field.
func (r *queryResolver) GetContentStats(ctx context.Context) (*content.Stats, error) {
	stats, err := r.content.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetContentModules is the resolver for the getContentModules field.
func (r *queryResolver) GetContentModules(ctx context.Context) ([]content.Module, error) {
	return r.content.ListModules(ctx)
}

// GetUserManagementData is the resolver for the getUserManagementData field.
func (r *queryResolver) GetUserManagementData(ctx context.Context) (*member.ManagementData, error) {
	data, err := r.member.GetManagementData(ctx)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// GetUserDetail is the resolver for the getUserDetail field.
func (r *queryResolver) GetUserDetail(ctx context.Context, userID primitive.ObjectID) (*member.UserDetail, error) {
	detail, err := r.member.GetUserDetail(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetAnalyticsData is the resolver for the getAnalyticsData field.
func (r *queryResolver) GetAnalyticsData(ctx context.Context) (*analytics.Data, error) {
	data, err := r.analytics.GetData(ctx)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSettingsData is the resolver for the getSettingsData field.
func (r *queryResolver) GetSettingsData(ctx context.Context) (*domain.Institution, error) {
	return r.settings.GetData(ctx)
}

// EventType is the resolver for the eventType field.
func (r *timelineEntryResolver) EventType(ctx context.Context, obj *domain.TimelineEntry) (string, error) {
	panic(fmt.Errorf("not implemented: EventType - eventType"))
}

// Status is the resolver for the status field.
func (r *updatedMemberResolver) Status(ctx context.Context, obj *member.UpdatedMember) (string, error) {
	panic(fmt.Errorf("not implemented: Status - status"))
}

// Status is the resolver for the status field.
func (r *userDetailResolver) Status(ctx context.Context, obj *member.UserDetail) (string, error) {
	panic(fmt.Errorf("not implemented: Status - status"))
}

// Status is the resolver for the status field.
func (r *updateUserStatusInputResolver) Status(ctx context.Context, obj *member.UpdateStatusInput, data string) error {
	panic(fmt.Errorf("not implemented: Status - status"))
}

// ActivityEntry returns generated.ActivityEntryResolver implementation.
func (r *Resolver) ActivityEntry() generated.ActivityEntryResolver { return &activityEntryResolver{r} }

// Institution returns generated.InstitutionResolver implementation.
func (r *Resolver) Institution() generated.InstitutionResolver { return &institutionResolver{r} }

// ManagedUser returns generated.ManagedUserResolver implementation.
func (r *Resolver) ManagedUser() generated.ManagedUserResolver { return &managedUserResolver{r} }

// ModulePerformance returns generated.ModulePerformanceResolver implementation.
func (r *Resolver) ModulePerformance() generated.ModulePerformanceResolver {
	return &modulePerformanceResolver{r}
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// TimelineEntry returns generated.TimelineEntryResolver implementation.
func (r *Resolver) TimelineEntry() generated.TimelineEntryResolver { return &timelineEntryResolver{r} }

// UpdatedMember returns generated.UpdatedMemberResolver implementation.
func (r *Resolver) UpdatedMember() generated.UpdatedMemberResolver { return &updatedMemberResolver{r} }

// UserDetail returns generated.UserDetailResolver implementation.
func (r *Resolver) UserDetail() generated.UserDetailResolver { return &userDetailResolver{r} }

// UpdateUserStatusInput returns generated.UpdateUserStatusInputResolver implementation.
func (r *Resolver) UpdateUserStatusInput() generated.UpdateUserStatusInputResolver {
	return &updateUserStatusInputResolver{r}
}

type activityEntryResolver struct{ *Resolver }
type institutionResolver struct{ *Resolver }
type managedUserResolver struct{ *Resolver }
type modulePerformanceResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type timelineEntryResolver struct{ *Resolver }
type updatedMemberResolver struct{ *Resolver }
type userDetailResolver struct{ *Resolver }
type updateUserStatusInputResolver struct{ *Resolver }
