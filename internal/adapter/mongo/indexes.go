package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every aggregation path depends on.
// Called at startup; each CreateMany is idempotent. Errors are aggregated so
// any problem is visible and startup can fail fast.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, models []mongo.IndexModel) {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	ensure("institutions", []mongo.IndexModel{
		{Keys: bson.D{{Key: "portalKey", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "admins", Value: 1}}},
	})

	ensure("institution_members", []mongo.IndexModel{
		{Keys: bson.D{{Key: "institutionId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "institutionId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})

	ensure("contents", []mongo.IndexModel{
		{Keys: bson.D{{Key: "institutionId", Value: 1}, {Key: "isTrash", Value: 1}, {Key: "order", Value: 1}}},
	})

	ensure("performances", []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "contentId", Value: 1}}},
	})

	ensure("interactions", []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
