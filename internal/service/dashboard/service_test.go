package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

//go:generate moq -out membership_repo_mock_test.go -pkg dashboard . membershipRepo
//go:generate moq -out content_repo_mock_test.go -pkg dashboard . contentRepo
//go:generate moq -out performance_repo_mock_test.go -pkg dashboard . performanceRepo
//go:generate moq -out interaction_repo_mock_test.go -pkg dashboard . interactionRepo

func newTestService(members *membershipRepoMock, contents *contentRepoMock, performances *performanceRepoMock, interactions *interactionRepoMock) *Service {
	return &Service{
		members:      members,
		contents:     contents,
		performances: performances,
		interactions: interactions,
		log:          slog.Default(),
	}
}

func authedCtx(institutionID primitive.ObjectID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), primitive.NewObjectID())
	return ctxutil.WithInstitutionID(ctx, institutionID)
}

func TestGetStats_Success(t *testing.T) {
	t.Parallel()

	institutionID := primitive.NewObjectID()

	members := &membershipRepoMock{
		CountByStatusFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus) (int64, error) {
			assert.Equal(t, institutionID, instID)
			switch status {
			case domain.MemberActive:
				return 42, nil
			case domain.MemberPending:
				return 7, nil
			}
			t.Errorf("unexpected status %q", status)
			return 0, nil
		},
		CountByStatusCreatedBeforeFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus, before time.Time) (int64, error) {
			switch status {
			case domain.MemberActive:
				return 40, nil
			case domain.MemberPending:
				return 8, nil
			}
			return 0, nil
		},
	}
	contents := &contentRepoMock{
		CountPublishedFunc: func(ctx context.Context, instID primitive.ObjectID) (int64, error) {
			return 12, nil
		},
		CountPublishedCreatedBeforeFunc: func(ctx context.Context, instID primitive.ObjectID, before time.Time) (int64, error) {
			return 12, nil
		},
	}
	performances := &performanceRepoMock{
		AverageByMembershipFunc: func(ctx context.Context, instID primitive.ObjectID) (float64, error) {
			return 71.5, nil
		},
		AverageByMembershipBetweenFunc: func(ctx context.Context, instID primitive.ObjectID, from, to time.Time) (float64, error) {
			// Windows must be contiguous: [from, to) of the previous
			// window ends where the current one starts.
			if to.Sub(from) != 30*24*time.Hour {
				t.Errorf("window length: got %v", to.Sub(from))
			}
			if time.Since(to) > time.Minute {
				return 70.0, nil // previous window
			}
			return 74.0, nil // current window
		},
	}

	svc := newTestService(members, contents, performances, &interactionRepoMock{})

	stats, err := svc.GetStats(authedCtx(institutionID))
	require.NoError(t, err)

	assert.Equal(t, CountStat{Value: 42, Change: 2}, stats.EnrolledUsers)
	assert.Equal(t, CountStat{Value: 7, Change: -1}, stats.PendingUsers)
	assert.Equal(t, CountStat{Value: 12, Change: 0}, stats.PublishedContent)
	assert.InDelta(t, 71.5, stats.AverageProgress.Value, 1e-9)
	assert.InDelta(t, 4.0, stats.AverageProgress.Change, 1e-9)

	assert.Len(t, members.CountByStatusCalls(), 2)
	assert.Len(t, performances.AverageByMembershipBetweenCalls(), 2)
}

func TestGetStats_NoPerformanceRows(t *testing.T) {
	t.Parallel()

	members := &membershipRepoMock{
		CountByStatusFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus) (int64, error) {
			return 0, nil
		},
		CountByStatusCreatedBeforeFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus, before time.Time) (int64, error) {
			return 0, nil
		},
	}
	contents := &contentRepoMock{
		CountPublishedFunc: func(ctx context.Context, instID primitive.ObjectID) (int64, error) {
			return 0, nil
		},
		CountPublishedCreatedBeforeFunc: func(ctx context.Context, instID primitive.ObjectID, before time.Time) (int64, error) {
			return 0, nil
		},
	}
	performances := &performanceRepoMock{
		AverageByMembershipFunc: func(ctx context.Context, instID primitive.ObjectID) (float64, error) {
			return 0, nil
		},
		AverageByMembershipBetweenFunc: func(ctx context.Context, instID primitive.ObjectID, from, to time.Time) (float64, error) {
			return 0, nil
		},
	}

	svc := newTestService(members, contents, performances, &interactionRepoMock{})

	stats, err := svc.GetStats(authedCtx(primitive.NewObjectID()))
	require.NoError(t, err)
	assert.Zero(t, stats.AverageProgress.Value)
	assert.Zero(t, stats.AverageProgress.Change)
}

func TestGetStats_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&membershipRepoMock{}, &contentRepoMock{}, &performanceRepoMock{}, &interactionRepoMock{})

	_, err := svc.GetStats(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetStats_MissingInstitutionScope(t *testing.T) {
	t.Parallel()

	svc := newTestService(&membershipRepoMock{}, &contentRepoMock{}, &performanceRepoMock{}, &interactionRepoMock{})

	ctx := ctxutil.WithUserID(context.Background(), primitive.NewObjectID())
	_, err := svc.GetStats(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetStats_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	members := &membershipRepoMock{
		CountByStatusFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus) (int64, error) {
			return 0, repoErr
		},
	}

	svc := newTestService(members, &contentRepoMock{}, &performanceRepoMock{}, &interactionRepoMock{})

	_, err := svc.GetStats(authedCtx(primitive.NewObjectID()))
	assert.ErrorIs(t, err, repoErr)
}

func TestRecentActivity_Success(t *testing.T) {
	t.Parallel()

	institutionID := primitive.NewObjectID()
	memberIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	entry := domain.ActivityEntry{
		ID:        primitive.NewObjectID(),
		EventType: domain.EventEnd,
		Timestamp: time.Now(),
	}

	members := &membershipRepoMock{
		ListUserIDsFunc: func(ctx context.Context, instID primitive.ObjectID) ([]primitive.ObjectID, error) {
			assert.Equal(t, institutionID, instID)
			return memberIDs, nil
		},
	}
	interactions := &interactionRepoMock{
		ListRecentByUsersFunc: func(ctx context.Context, userIDs []primitive.ObjectID, limit int) ([]domain.ActivityEntry, error) {
			assert.Equal(t, memberIDs, userIDs)
			assert.Equal(t, 3, limit)
			return []domain.ActivityEntry{entry}, nil
		},
	}

	svc := newTestService(members, &contentRepoMock{}, &performanceRepoMock{}, interactions)

	entries, err := svc.RecentActivity(authedCtx(institutionID), 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestRecentActivity_DefaultLimit(t *testing.T) {
	t.Parallel()

	members := &membershipRepoMock{
		ListUserIDsFunc: func(ctx context.Context, instID primitive.ObjectID) ([]primitive.ObjectID, error) {
			return []primitive.ObjectID{primitive.NewObjectID()}, nil
		},
	}
	interactions := &interactionRepoMock{
		ListRecentByUsersFunc: func(ctx context.Context, userIDs []primitive.ObjectID, limit int) ([]domain.ActivityEntry, error) {
			assert.Equal(t, DefaultActivityLimit, limit)
			return nil, nil
		},
	}

	svc := newTestService(members, &contentRepoMock{}, &performanceRepoMock{}, interactions)

	_, err := svc.RecentActivity(authedCtx(primitive.NewObjectID()), 0)
	require.NoError(t, err)
}

func TestRecentActivity_NoMembersShortCircuits(t *testing.T) {
	t.Parallel()

	members := &membershipRepoMock{
		ListUserIDsFunc: func(ctx context.Context, instID primitive.ObjectID) ([]primitive.ObjectID, error) {
			return nil, nil
		},
	}
	interactions := &interactionRepoMock{
		ListRecentByUsersFunc: func(ctx context.Context, userIDs []primitive.ObjectID, limit int) ([]domain.ActivityEntry, error) {
			return nil, nil
		},
	}

	svc := newTestService(members, &contentRepoMock{}, &performanceRepoMock{}, interactions)

	entries, err := svc.RecentActivity(authedCtx(primitive.NewObjectID()), 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
	assert.Len(t, interactions.ListRecentByUsersCalls(), 0)
}

func TestRecentActivity_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&membershipRepoMock{}, &contentRepoMock{}, &performanceRepoMock{}, &interactionRepoMock{})

	_, err := svc.RecentActivity(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
