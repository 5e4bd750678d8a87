package member

import (
	"context"
	"fmt"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// GetManagementData returns the membership-wide stats plus the full member
// listing, newest registration first. The headline average is computed over
// actual performance records of active members; members with no records
// contribute no score to it. Per-row averages default to 0.
func (s *Service) GetManagementData(ctx context.Context) (ManagementData, error) {
	institutionID, ok := ctxutil.InstitutionIDFromCtx(ctx)
	if !ok {
		return ManagementData{}, domain.ErrUnauthorized
	}

	total, err := s.members.CountByStatus(ctx, institutionID, "")
	if err != nil {
		return ManagementData{}, fmt.Errorf("count members: %w", err)
	}
	active, err := s.members.CountByStatus(ctx, institutionID, domain.MemberActive)
	if err != nil {
		return ManagementData{}, fmt.Errorf("count active members: %w", err)
	}
	pending, err := s.members.CountByStatus(ctx, institutionID, domain.MemberPending)
	if err != nil {
		return ManagementData{}, fmt.Errorf("count pending members: %w", err)
	}
	average, err := s.members.AverageActivePerformance(ctx, institutionID)
	if err != nil {
		return ManagementData{}, fmt.Errorf("average performance: %w", err)
	}

	rows, err := s.members.ListWithPerformance(ctx, institutionID)
	if err != nil {
		return ManagementData{}, fmt.Errorf("list members: %w", err)
	}

	listed := make([]ManagedMember, 0, len(rows))
	for _, row := range rows {
		listed = append(listed, ManagedMember{
			UserID:             row.UserID,
			Name:               row.Name,
			Email:              row.Email,
			ProfileImage:       row.ProfileImage,
			RegistrationDate:   row.RegistrationDate,
			Status:             row.Status,
			BusinessName:       orNA(row.BusinessName),
			TIN:                orNA(row.TIN),
			AveragePerformance: orZero(row.AveragePerformance),
		})
	}

	return ManagementData{
		Overview: Overview{
			TotalMembers:       total,
			ActiveMembers:      active,
			PendingMembers:     pending,
			AveragePerformance: average,
		},
		Members: listed,
	}, nil
}
