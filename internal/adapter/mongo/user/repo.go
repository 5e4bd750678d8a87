// Package user implements the User repository backed by MongoDB.
package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adapter "github.com/lumohq/lumo-backend/internal/adapter/mongo"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// Repo provides user persistence. Profile fields are read-only from this
// layer; only the password hash is ever written.
type Repo struct {
	c *mongo.Collection
}

// New creates a new user repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("users")}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var u domain.User
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, adapter.MapError(err, "user.GetByID")
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, adapter.MapError(err, "user.GetByEmail")
	}
	return &u, nil
}

// GetByIDs returns the users with the given IDs, in no particular order.
// Missing IDs are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, adapter.MapError(err, "user.GetByIDs")
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, adapter.MapError(err, "user.GetByIDs")
	}
	return users, nil
}

// UpdatePasswordHash replaces the user's stored credential hash.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"passwordHash": hash}},
	)
	if err != nil {
		return adapter.MapError(err, "user.UpdatePasswordHash")
	}
	if res.MatchedCount == 0 {
		return adapter.MapError(mongo.ErrNoDocuments, "user.UpdatePasswordHash")
	}
	return nil
}
