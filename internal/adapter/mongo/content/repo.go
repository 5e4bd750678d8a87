// Package content implements the Content repository backed by MongoDB.
// Every write is filtered by institutionId so cross-tenant IDs never apply.
package content

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

// Repo provides content persistence and listing.
type Repo struct {
	c *mongo.Collection
}

// New creates a new content repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("contents")}
}

// CountPublished returns the number of published items (not draft, not
// trashed) in the institution.
func (r *Repo) CountPublished(ctx context.Context, institutionID primitive.ObjectID) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{
		"institutionId": institutionID,
		"isDraft":       false,
		"isTrash":       false,
	})
	if err != nil {
		return 0, adapter.MapError(err, "content.CountPublished")
	}
	return n, nil
}

// CountPublishedCreatedBefore is CountPublished restricted to items created
// strictly before the cutoff. Used for period-over-period deltas.
func (r *Repo) CountPublishedCreatedBefore(ctx context.Context, institutionID primitive.ObjectID, before time.Time) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{
		"institutionId": institutionID,
		"isDraft":       false,
		"isTrash":       false,
		"createdAt":     bson.M{"$lt": before},
	})
	if err != nil {
		return 0, adapter.MapError(err, "content.CountPublishedCreatedBefore")
	}
	return n, nil
}

// CountNonTrashed returns the number of items in the institution that are
// not in the trash, drafts included.
func (r *Repo) CountNonTrashed(ctx context.Context, institutionID primitive.ObjectID) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{
		"institutionId": institutionID,
		"isTrash":       false,
	})
	if err != nil {
		return 0, adapter.MapError(err, "content.CountNonTrashed")
	}
	return n, nil
}

// ListNonTrashed returns all non-trashed items of the institution ordered by
// their order field ascending, each joined with the creator's name. Items
// whose creator no longer resolves keep an empty author name rather than
// being dropped.
func (r *Repo) ListNonTrashed(ctx context.Context, institutionID primitive.ObjectID) ([]domain.ContentWithAuthor, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"institutionId": institutionID, "isTrash": false}},
		{"$sort": bson.M{"order": 1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "authorDoc",
		}},
		{"$unwind": bson.M{"path": "$authorDoc", "preserveNullAndEmptyArrays": true}},
		{"$addFields": bson.M{"authorName": bson.M{"$ifNull": bson.A{"$authorDoc.name", ""}}}},
		{"$project": bson.M{"authorDoc": 0}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "content.ListNonTrashed")
	}
	defer cur.Close(ctx)

	var rows []domain.ContentWithAuthor
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "content.ListNonTrashed")
	}
	return rows, nil
}

// GetByIDs returns the content items with the given IDs, in no particular
// order. Missing IDs are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, adapter.MapError(err, "content.GetByIDs")
	}
	defer cur.Close(ctx)

	var items []domain.Content
	if err := cur.All(ctx, &items); err != nil {
		return nil, adapter.MapError(err, "content.GetByIDs")
	}
	return items, nil
}

// HighestOrder returns the highest order value currently assigned in the
// institution. ok is false when the institution has no content at all.
func (r *Repo) HighestOrder(ctx context.Context, institutionID primitive.ObjectID) (order int, ok bool, err error) {
	opts := options.FindOne().
		SetSort(bson.M{"order": -1}).
		SetProjection(bson.M{"order": 1})

	var row struct {
		Order int `bson:"order"`
	}
	findErr := r.c.FindOne(ctx, bson.M{"institutionId": institutionID}, opts).Decode(&row)
	if findErr == mongo.ErrNoDocuments {
		return 0, false, nil
	}
	if findErr != nil {
		return 0, false, adapter.MapError(findErr, "content.HighestOrder")
	}
	return row.Order, true, nil
}

// Insert stores a new content item and returns it with the assigned ID.
func (r *Repo) Insert(ctx context.Context, c domain.Content) (*domain.Content, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if _, err := r.c.InsertOne(ctx, c); err != nil {
		return nil, adapter.MapError(err, "content.Insert")
	}
	return &c, nil
}

// SoftDeleteMany sets isTrash on every listed item that belongs to the
// institution and returns the number of documents actually modified.
// Out-of-tenant IDs in the list match nothing and are left untouched.
func (r *Repo) SoftDeleteMany(ctx context.Context, institutionID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "institutionId": institutionID},
		bson.M{"$set": bson.M{"isTrash": true}},
	)
	if err != nil {
		return 0, adapter.MapError(err, "content.SoftDeleteMany")
	}
	return res.ModifiedCount, nil
}

// Reorder writes each ID's 0-based position into its order field in one
// unordered bulk write. Every update is scoped to the institution, so IDs
// from another tenant do not apply. The bulk is not transactional: a failure
// partway leaves earlier writes applied; per-row writes are idempotent, so
// callers may safely re-issue the full reorder.
func (r *Repo) Reorder(ctx context.Context, institutionID primitive.ObjectID, orderedIDs []primitive.ObjectID) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id, "institutionId": institutionID}).
			SetUpdate(bson.M{"$set": bson.M{"order": i}}))
	}

	opts := options.BulkWrite().SetOrdered(false)
	if _, err := r.c.BulkWrite(ctx, models, opts); err != nil {
		return adapter.MapError(err, "content.Reorder")
	}
	return nil
}
