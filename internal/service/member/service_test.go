package member

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

//go:generate moq -out membership_repo_mock_test.go -pkg member . membershipRepo
//go:generate moq -out deps_mock_test.go -pkg member . performanceRepo contentRepo interactionRepo userRepo

type mocks struct {
	members      *membershipRepoMock
	performances *performanceRepoMock
	contents     *contentRepoMock
	interactions *interactionRepoMock
	users        *userRepoMock
}

func newTestService(m mocks) *Service {
	if m.members == nil {
		m.members = &membershipRepoMock{}
	}
	if m.performances == nil {
		m.performances = &performanceRepoMock{}
	}
	if m.contents == nil {
		m.contents = &contentRepoMock{}
	}
	if m.interactions == nil {
		m.interactions = &interactionRepoMock{}
	}
	if m.users == nil {
		m.users = &userRepoMock{}
	}
	return &Service{
		members:      m.members,
		performances: m.performances,
		contents:     m.contents,
		interactions: m.interactions,
		users:        m.users,
		log:          slog.Default(),
	}
}

func authedCtx(institutionID primitive.ObjectID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), primitive.NewObjectID())
	return ctxutil.WithInstitutionID(ctx, institutionID)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestGetManagementData_Success(t *testing.T) {
	t.Parallel()

	institutionID := primitive.NewObjectID()
	registered := time.Now().Add(-48 * time.Hour)

	members := &membershipRepoMock{
		CountByStatusFunc: func(ctx context.Context, instID primitive.ObjectID, status domain.MemberStatus) (int64, error) {
			switch status {
			case "":
				return 10, nil
			case domain.MemberActive:
				return 6, nil
			case domain.MemberPending:
				return 3, nil
			}
			return 0, fmt.Errorf("unexpected status %q", status)
		},
		AverageActivePerformanceFunc: func(ctx context.Context, instID primitive.ObjectID) (float64, error) {
			return 68.4, nil
		},
		ListWithPerformanceFunc: func(ctx context.Context, instID primitive.ObjectID) ([]domain.MemberOverview, error) {
			return []domain.MemberOverview{
				{
					UserID:             primitive.NewObjectID(),
					Name:               "Grace",
					Email:              "grace@example.com",
					RegistrationDate:   registered,
					Status:             domain.MemberActive,
					BusinessName:       strPtr("Grace Ltd"),
					TIN:                strPtr("12-345"),
					AveragePerformance: floatPtr(91.2),
				},
				{
					UserID:           primitive.NewObjectID(),
					Name:             "Heinz",
					Email:            "heinz@example.com",
					RegistrationDate: registered.Add(-time.Hour),
					Status:           domain.MemberPending,
				},
			}, nil
		},
	}

	svc := newTestService(mocks{members: members})

	data, err := svc.GetManagementData(authedCtx(institutionID))
	require.NoError(t, err)

	assert.Equal(t, int64(10), data.Overview.TotalMembers)
	assert.Equal(t, int64(6), data.Overview.ActiveMembers)
	assert.Equal(t, int64(3), data.Overview.PendingMembers)
	assert.InDelta(t, 68.4, data.Overview.AveragePerformance, 1e-9)

	require.Len(t, data.Members, 2)
	assert.Equal(t, "Grace Ltd", data.Members[0].BusinessName)
	assert.Equal(t, "12-345", data.Members[0].TIN)
	assert.InDelta(t, 91.2, data.Members[0].AveragePerformance, 1e-9)

	assert.Equal(t, "N/A", data.Members[1].BusinessName)
	assert.Equal(t, "N/A", data.Members[1].TIN)
	assert.Zero(t, data.Members[1].AveragePerformance)
}

func TestGetManagementData_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(mocks{})

	_, err := svc.GetManagementData(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetUserDetail_Success(t *testing.T) {
	t.Parallel()

	institutionID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	registered := time.Now().Add(-30 * 24 * time.Hour)

	members := &membershipRepoMock{
		GetByUserFunc: func(ctx context.Context, instID, uid primitive.ObjectID) (*domain.InstitutionMember, error) {
			assert.Equal(t, institutionID, instID)
			assert.Equal(t, userID, uid)
			return &domain.InstitutionMember{
				UserID:        userID,
				InstitutionID: institutionID,
				Status:        domain.MemberActive,
				Metadata:      domain.MemberMetadata{BusinessName: strPtr("Acme")},
				CreatedAt:     registered,
			}, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{
				ID:    userID,
				Name:  "Ivy",
				Email: "ivy@example.com",
				Phone: strPtr("+123"),
			}, nil
		},
	}
	performances := &performanceRepoMock{
		ListByUserFunc: func(ctx context.Context, uid primitive.ObjectID) ([]domain.PerformanceEntry, error) {
			return []domain.PerformanceEntry{
				{UnderstandingScore: 90, UnderstandingLevel: domain.UnderstandingMastered, TotalTimeSeconds: 600},
				{UnderstandingScore: 71, UnderstandingLevel: domain.UnderstandingProficient, TotalTimeSeconds: 300},
			}, nil
		},
	}
	contents := &contentRepoMock{
		CountNonTrashedFunc: func(ctx context.Context, instID primitive.ObjectID) (int64, error) {
			return 8, nil
		},
	}
	interactions := &interactionRepoMock{
		ListRecentByUserFunc: func(ctx context.Context, uid primitive.ObjectID, limit int) ([]domain.TimelineEntry, error) {
			assert.Equal(t, detailActivityLimit, limit)
			return []domain.TimelineEntry{{EventType: domain.EventEnd, Timestamp: time.Now()}}, nil
		},
	}

	svc := newTestService(mocks{
		members:      members,
		performances: performances,
		contents:     contents,
		interactions: interactions,
		users:        users,
	})

	detail, err := svc.GetUserDetail(authedCtx(institutionID), userID)
	require.NoError(t, err)

	assert.Equal(t, "Ivy", detail.Name)
	assert.Equal(t, "+123", detail.Phone)
	assert.Equal(t, "N/A", detail.Address)
	assert.Equal(t, "Acme", detail.BusinessName)
	assert.Equal(t, "N/A", detail.TIN)
	assert.Equal(t, domain.MemberActive, detail.Status)
	assert.Equal(t, registered, detail.RegistrationDate)

	assert.Equal(t, int64(8), detail.TotalModules)
	assert.Equal(t, int64(1), detail.MasteredModules)
	assert.InDelta(t, 81, detail.AverageScore, 1e-9) // round(80.5)
	assert.Equal(t, int64(900), detail.TotalTimeSeconds)
	assert.Len(t, detail.Performance, 2)
	assert.Len(t, detail.RecentActivity, 1)
}

func TestGetUserDetail_NoPerformanceRows(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	members := &membershipRepoMock{
		GetByUserFunc: func(ctx context.Context, instID, uid primitive.ObjectID) (*domain.InstitutionMember, error) {
			return &domain.InstitutionMember{UserID: uid, Status: domain.MemberActive}, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Jo"}, nil
		},
	}
	performances := &performanceRepoMock{
		ListByUserFunc: func(ctx context.Context, uid primitive.ObjectID) ([]domain.PerformanceEntry, error) {
			return nil, nil
		},
	}
	contents := &contentRepoMock{
		CountNonTrashedFunc: func(ctx context.Context, instID primitive.ObjectID) (int64, error) {
			return 4, nil
		},
	}
	interactions := &interactionRepoMock{
		ListRecentByUserFunc: func(ctx context.Context, uid primitive.ObjectID, limit int) ([]domain.TimelineEntry, error) {
			return nil, nil
		},
	}

	svc := newTestService(mocks{
		members:      members,
		performances: performances,
		contents:     contents,
		interactions: interactions,
		users:        users,
	})

	detail, err := svc.GetUserDetail(authedCtx(primitive.NewObjectID()), userID)
	require.NoError(t, err)
	assert.Zero(t, detail.AverageScore)
	assert.Zero(t, detail.MasteredModules)
	assert.Zero(t, detail.TotalTimeSeconds)
}

func TestGetUserDetail_NotAMember(t *testing.T) {
	t.Parallel()

	members := &membershipRepoMock{
		GetByUserFunc: func(ctx context.Context, instID, uid primitive.ObjectID) (*domain.InstitutionMember, error) {
			return nil, fmt.Errorf("membership.GetByUser: %w", domain.ErrNotFound)
		},
	}

	svc := newTestService(mocks{members: members})

	_, err := svc.GetUserDetail(authedCtx(primitive.NewObjectID()), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserDetail_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(mocks{})

	_, err := svc.GetUserDetail(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateStatus_Success(t *testing.T) {
	t.Parallel()

	institutionID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	members := &membershipRepoMock{
		UpdateStatusFunc: func(ctx context.Context, instID, uid primitive.ObjectID, status domain.MemberStatus) (*domain.InstitutionMember, error) {
			assert.Equal(t, institutionID, instID)
			assert.Equal(t, domain.MemberRevoked, status)
			return &domain.InstitutionMember{UserID: uid, Status: status}, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Kim", Email: "kim@example.com"}, nil
		},
	}
	performances := &performanceRepoMock{
		AverageForUserFunc: func(ctx context.Context, uid primitive.ObjectID) (float64, error) {
			return 55.5, nil
		},
	}

	svc := newTestService(mocks{members: members, users: users, performances: performances})

	updated, err := svc.UpdateStatus(authedCtx(institutionID), UpdateStatusInput{
		UserID: userID,
		Status: domain.MemberRevoked,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, updated.UserID)
	assert.Equal(t, "Kim", updated.Name)
	assert.Equal(t, domain.MemberRevoked, updated.Status)
	assert.InDelta(t, 55.5, updated.AveragePerformance, 1e-9)
}

func TestUpdateStatus_PendingNotSettable(t *testing.T) {
	t.Parallel()

	svc := newTestService(mocks{})

	_, err := svc.UpdateStatus(authedCtx(primitive.NewObjectID()), UpdateStatusInput{
		UserID: primitive.NewObjectID(),
		Status: domain.MemberPending,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus_MembershipNotFound(t *testing.T) {
	t.Parallel()

	members := &membershipRepoMock{
		UpdateStatusFunc: func(ctx context.Context, instID, uid primitive.ObjectID, status domain.MemberStatus) (*domain.InstitutionMember, error) {
			return nil, fmt.Errorf("membership.UpdateStatus: %w", domain.ErrNotFound)
		},
	}

	svc := newTestService(mocks{members: members})

	_, err := svc.UpdateStatus(authedCtx(primitive.NewObjectID()), UpdateStatusInput{
		UserID: primitive.NewObjectID(),
		Status: domain.MemberActive,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
