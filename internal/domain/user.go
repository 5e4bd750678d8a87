package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. Profile fields other than the password hash
// are read-only from this layer.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	ProfileImage *string            `bson:"profileImage,omitempty"`
	Phone        *string            `bson:"phone,omitempty"`
	Address      *string            `bson:"address,omitempty"`
	PasswordHash *string            `bson:"passwordHash,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// HasPassword reports whether the user has a local password credential.
// OAuth-only users have no stored hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
