// Package institution implements the Institution (tenant) repository
// backed by MongoDB.
package institution

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adapter "github.com/lumohq/lumo-backend/internal/adapter/mongo"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// Repo provides institution persistence.
type Repo struct {
	c *mongo.Collection
}

// New creates a new institution repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("institutions")}
}

// GetByID returns an institution by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Institution, error) {
	var inst domain.Institution
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&inst); err != nil {
		return nil, adapter.MapError(err, "institution.GetByID")
	}
	return &inst, nil
}

// GetForAdmin returns the institution the user owns or administers.
// Returns domain.ErrNotFound when the user administers none.
func (r *Repo) GetForAdmin(ctx context.Context, userID primitive.ObjectID) (*domain.Institution, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"owner": userID},
		bson.M{"admins": userID},
	}}

	var inst domain.Institution
	if err := r.c.FindOne(ctx, filter).Decode(&inst); err != nil {
		return nil, adapter.MapError(err, "institution.GetForAdmin")
	}
	return &inst, nil
}

// UpdateSettings applies the non-nil fields of the patch and returns the
// updated institution. Returns domain.ErrNotFound if the institution does
// not exist.
func (r *Repo) UpdateSettings(ctx context.Context, id primitive.ObjectID, patch domain.SettingsPatch) (*domain.Institution, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}

	apply := func(field string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			unset[field] = ""
			return
		}
		set[field] = *v
	}

	if patch.Name != nil && *patch.Name != "" {
		// The institution name is required; an empty value is ignored
		// rather than unset.
		set["name"] = *patch.Name
	}
	apply("description", patch.Description)
	apply("website", patch.Website)
	apply("contactEmail", patch.ContactEmail)
	apply("contactPhone", patch.ContactPhone)
	apply("address", patch.Address)
	apply("branding.logoUrl", patch.LogoURL)
	apply("branding.primaryColor", patch.PrimaryColor)
	apply("branding.secondaryColor", patch.SecondaryColor)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inst domain.Institution
	if err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&inst); err != nil {
		return nil, adapter.MapError(err, "institution.UpdateSettings")
	}
	return &inst, nil
}
