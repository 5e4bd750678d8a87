package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberStatus is the lifecycle state of an institution membership.
// Transitions: pending → active, pending → revoked, active ↔ revoked.
type MemberStatus string

const (
	MemberPending MemberStatus = "pending"
	MemberActive  MemberStatus = "active"
	MemberRevoked MemberStatus = "revoked"
)

// Valid reports whether s is one of the known membership states.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberPending, MemberActive, MemberRevoked:
		return true
	}
	return false
}

// MemberMetadata carries institution-specific registration details.
type MemberMetadata struct {
	BusinessName *string `bson:"businessName,omitempty"`
	TIN          *string `bson:"tin,omitempty"`
}

// InstitutionMember joins a User to an Institution. It is the scoping
// anchor for every institution-scoped query.
type InstitutionMember struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId"`
	InstitutionID primitive.ObjectID `bson:"institutionId"`
	Status        MemberStatus       `bson:"status"`
	Metadata      MemberMetadata     `bson:"metadata"`
	CreatedAt     time.Time          `bson:"createdAt"`
}
