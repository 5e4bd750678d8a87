package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEngagement holds denormalized engagement counters for a content item.
type UserEngagement struct {
	Rating      int `bson:"rating"`
	Views       int `bson:"views"`
	Saves       int `bson:"saves"`
	Shares      int `bson:"shares"`
	Completions int `bson:"completions"`
}

// Content is an educational module owned by one institution.
// Order values are dense and unique within an institution after a reorder.
type Content struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    *string            `bson:"description,omitempty"`
	Tags           []string           `bson:"tags"`
	IsDraft        bool               `bson:"isDraft"`
	IsTrash        bool               `bson:"isTrash"`
	Order          int                `bson:"order"`
	InstitutionID  primitive.ObjectID `bson:"institutionId"`
	CreatedBy      primitive.ObjectID `bson:"createdBy"`
	UserEngagement UserEngagement     `bson:"userEngagement"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// IsPublished reports whether the item is visible to learners:
// not a draft and not in the trash.
func (c *Content) IsPublished() bool {
	return !c.IsDraft && !c.IsTrash
}

// Status returns the display status string used by the admin UI.
func (c *Content) Status() string {
	if c.IsDraft {
		return "Draft"
	}
	return "Published"
}
