// Package interaction implements the append-only interaction-event
// repository backed by MongoDB. Events are only ever inserted and read.
package interaction

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adapter "github.com/lumohq/lumo-backend/internal/adapter/mongo"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// Repo provides interaction-event reads.
type Repo struct {
	c *mongo.Collection
}

// New creates a new interaction repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("interactions")}
}

// ListRecentByUsers returns the most recent events generated by the given
// users, newest first, joined with user and content summaries. The $unwind
// stages do not preserve empty joins, so events whose user or content no
// longer resolves are dropped rather than failing the feed.
func (r *Repo) ListRecentByUsers(ctx context.Context, userIDs []primitive.ObjectID, limit int) ([]domain.ActivityEntry, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	pipeline := []bson.M{
		{"$match": bson.M{"userId": bson.M{"$in": userIDs}}},
		{"$sort": bson.M{"timestamp": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "content",
		}},
		{"$unwind": "$content"},
		{"$project": bson.M{
			"eventType": 1,
			"timestamp": 1,
			"user":      bson.M{"_id": "$user._id", "name": "$user.name", "email": "$user.email", "profileImage": "$user.profileImage"},
			"content":   bson.M{"_id": "$content._id", "title": "$content.title"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "interaction.ListRecentByUsers")
	}
	defer cur.Close(ctx)

	var rows []domain.ActivityEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "interaction.ListRecentByUsers")
	}
	return rows, nil
}

// ListRecentByUser returns the user's most recent events, newest first,
// joined with content titles. Events whose content was hard-deleted keep a
// nil title.
func (r *Repo) ListRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.TimelineEntry, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$sort": bson.M{"timestamp": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "contentDoc",
		}},
		{"$unwind": bson.M{"path": "$contentDoc", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"eventType": 1,
			"timestamp": 1,
			"contentId": 1,
			"title":     "$contentDoc.title",
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "interaction.ListRecentByUser")
	}
	defer cur.Close(ctx)

	var rows []domain.TimelineEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "interaction.ListRecentByUser")
	}
	return rows, nil
}

// CountActiveSince returns how many distinct users among userIDs generated
// at least one event at or after the cutoff.
func (r *Repo) CountActiveSince(ctx context.Context, userIDs []primitive.ObjectID, since time.Time) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"userId":    bson.M{"$in": userIDs},
			"timestamp": bson.M{"$gte": since},
		}},
		{"$group": bson.M{"_id": "$userId"}},
		{"$count": "count"},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, adapter.MapError(err, "interaction.CountActiveSince")
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Count int64 `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, adapter.MapError(err, "interaction.CountActiveSince")
		}
		return row.Count, nil
	}
	return 0, nil
}
