package member

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// Overview holds the membership-wide headline stats.
type Overview struct {
	TotalMembers       int64
	ActiveMembers      int64
	PendingMembers     int64
	AveragePerformance float64
}

// ManagedMember is one row of the member listing. Absent metadata fields
// carry the "N/A" fallback; a member with no performance rows has an
// average of 0.
type ManagedMember struct {
	UserID             primitive.ObjectID
	Name               string
	Email              string
	ProfileImage       *string
	RegistrationDate   time.Time
	Status             domain.MemberStatus
	BusinessName       string
	TIN                string
	AveragePerformance float64
}

// ManagementData is the full user-management page payload.
type ManagementData struct {
	Overview Overview
	Members  []ManagedMember
}

// UserDetail is the full profile view of one member.
type UserDetail struct {
	UserID           primitive.ObjectID
	Name             string
	Email            string
	ProfileImage     *string
	Phone            string
	Address          string
	BusinessName     string
	TIN              string
	Status           domain.MemberStatus
	RegistrationDate time.Time

	TotalModules     int64
	MasteredModules  int64
	AverageScore     float64
	TotalTimeSeconds int64

	Performance    []domain.PerformanceEntry
	RecentActivity []domain.TimelineEntry
}

// UpdatedMember is the result of a status update: the fresh membership
// merged with the user's profile and a recomputed average score.
type UpdatedMember struct {
	UserID             primitive.ObjectID
	Name               string
	Email              string
	Status             domain.MemberStatus
	AveragePerformance float64
}
