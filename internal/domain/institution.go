package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionStatus is the billing state of an institution.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Branding holds the institution's portal appearance settings.
type Branding struct {
	LogoURL        *string `bson:"logoUrl,omitempty"`
	PrimaryColor   *string `bson:"primaryColor,omitempty"`
	SecondaryColor *string `bson:"secondaryColor,omitempty"`
}

// Institution is the tenant record. All member, content and performance
// data is scoped to exactly one institution.
type Institution struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty"`
	Name               string               `bson:"name"`
	Owner              primitive.ObjectID   `bson:"owner"`
	Admins             []primitive.ObjectID `bson:"admins"`
	Members            []primitive.ObjectID `bson:"members"`
	PortalKey          string               `bson:"portalKey"`
	SubscriptionStatus SubscriptionStatus   `bson:"subscriptionStatus"`
	Branding           Branding             `bson:"branding"`
	Description        *string              `bson:"description,omitempty"`
	Website            *string              `bson:"website,omitempty"`
	ContactEmail       *string              `bson:"contactEmail,omitempty"`
	ContactPhone       *string              `bson:"contactPhone,omitempty"`
	Address            *string              `bson:"address,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt"`
}

// SettingsPatch carries a partial settings update. A nil field is "not
// provided" and leaves the stored value unchanged; a non-nil empty string
// clears the field. This makes absence and empty distinguishable rather
// than relying on truthiness.
type SettingsPatch struct {
	Name           *string
	Description    *string
	Website        *string
	ContactEmail   *string
	ContactPhone   *string
	Address        *string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
}
