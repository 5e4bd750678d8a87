// Package performance implements the Performance repository backed by
// MongoDB. It owns the score-aggregation pipelines used by the dashboard,
// content statistics and analytics rollups.
package performance

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adapter "github.com/lumohq/lumo-backend/internal/adapter/mongo"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// Repo provides performance-record persistence and aggregation.
type Repo struct {
	c *mongo.Collection
}

// New creates a new performance repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("performances")}
}

// ListByUser returns all performance rows for the user, each joined with the
// owning content's title. Rows whose content was hard-deleted are kept with
// a nil title so callers can substitute a fallback.
func (r *Repo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PerformanceEntry, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "contentDoc",
		}},
		{"$unwind": bson.M{"path": "$contentDoc", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"contentId":          1,
			"title":              "$contentDoc.title",
			"understandingScore": 1,
			"understandingLevel": 1,
			"totalTimeSeconds":   1,
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "performance.ListByUser")
	}
	defer cur.Close(ctx)

	var rows []domain.PerformanceEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "performance.ListByUser")
	}
	return rows, nil
}

// AverageForUser returns the user's own mean understanding score.
// Returns 0 when the user has no performance rows.
func (r *Repo) AverageForUser(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$group": bson.M{
			"_id":          nil,
			"averageScore": bson.M{"$avg": "$understandingScore"},
		}},
	}
	return r.singleAverage(ctx, pipeline, "performance.AverageForUser")
}

// AverageByMembership returns the mean understanding score across all
// performance rows whose owner is a member of the institution (join by
// userId through institution_members). Returns 0 when no rows match.
func (r *Repo) AverageByMembership(ctx context.Context, institutionID primitive.ObjectID) (float64, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "institution_members",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "membership",
		}},
		{"$unwind": "$membership"},
		{"$match": bson.M{"membership.institutionId": institutionID}},
		{"$group": bson.M{
			"_id":          nil,
			"averageScore": bson.M{"$avg": "$understandingScore"},
		}},
	}
	return r.singleAverage(ctx, pipeline, "performance.AverageByMembership")
}

// AverageByMembershipBetween is AverageByMembership restricted to rows last
// updated in [from, to). Used for period-over-period deltas.
func (r *Repo) AverageByMembershipBetween(ctx context.Context, institutionID primitive.ObjectID, from, to time.Time) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"updatedAt": bson.M{"$gte": from, "$lt": to}}},
		{"$lookup": bson.M{
			"from":         "institution_members",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "membership",
		}},
		{"$unwind": "$membership"},
		{"$match": bson.M{"membership.institutionId": institutionID}},
		{"$group": bson.M{
			"_id":          nil,
			"averageScore": bson.M{"$avg": "$understandingScore"},
		}},
	}
	return r.singleAverage(ctx, pipeline, "performance.AverageByMembershipBetween")
}

// AverageByContent returns the mean understanding score across all
// performance rows whose content belongs to the institution (join by
// contentId). Returns 0 when no rows match.
func (r *Repo) AverageByContent(ctx context.Context, institutionID primitive.ObjectID) (float64, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "contentDoc",
		}},
		{"$unwind": "$contentDoc"},
		{"$match": bson.M{"contentDoc.institutionId": institutionID}},
		{"$group": bson.M{
			"_id":          nil,
			"averageScore": bson.M{"$avg": "$understandingScore"},
		}},
	}
	return r.singleAverage(ctx, pipeline, "performance.AverageByContent")
}

func (r *Repo) singleAverage(ctx context.Context, pipeline []bson.M, op string) (float64, error) {
	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, adapter.MapError(err, op)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			AverageScore *float64 `bson:"averageScore"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, adapter.MapError(err, op)
		}
		if row.AverageScore != nil {
			return *row.AverageScore, nil
		}
	}
	return 0, nil
}

// InstitutionSummary returns row counts, the mastered-row count, and the
// mean score/time across every performance row whose content belongs to the
// institution. A zero-valued summary is returned when no rows match.
func (r *Repo) InstitutionSummary(ctx context.Context, institutionID primitive.ObjectID) (domain.PerformanceSummary, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "contentDoc",
		}},
		{"$unwind": "$contentDoc"},
		{"$match": bson.M{"contentDoc.institutionId": institutionID}},
		{"$group": bson.M{
			"_id":       nil,
			"totalRows": bson.M{"$sum": 1},
			"masteredRows": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$understandingLevel", domain.UnderstandingMastered}},
				1,
				0,
			}}},
			"averageScore":       bson.M{"$avg": "$understandingScore"},
			"averageTimeSeconds": bson.M{"$avg": "$totalTimeSeconds"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.PerformanceSummary{}, adapter.MapError(err, "performance.InstitutionSummary")
	}
	defer cur.Close(ctx)

	var s domain.PerformanceSummary
	if cur.Next(ctx) {
		if err := cur.Decode(&s); err != nil {
			return domain.PerformanceSummary{}, adapter.MapError(err, "performance.InstitutionSummary")
		}
	}
	return s, nil
}

// StatsByContent groups the institution's performance rows per content item.
// Content items with zero performance rows are absent from the result;
// callers merge against the full content listing.
func (r *Repo) StatsByContent(ctx context.Context, institutionID primitive.ObjectID) (map[primitive.ObjectID]domain.ContentPerformance, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "contents",
			"localField":   "contentId",
			"foreignField": "_id",
			"as":           "contentDoc",
		}},
		{"$unwind": "$contentDoc"},
		{"$match": bson.M{"contentDoc.institutionId": institutionID}},
		{"$group": bson.M{
			"_id":           "$contentId",
			"enrolledUsers": bson.M{"$sum": 1},
			"masteredUsers": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$understandingLevel", domain.UnderstandingMastered}},
				1,
				0,
			}}},
			"averageScore":       bson.M{"$avg": "$understandingScore"},
			"averageTimeSeconds": bson.M{"$avg": "$totalTimeSeconds"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "performance.StatsByContent")
	}
	defer cur.Close(ctx)

	stats := make(map[primitive.ObjectID]domain.ContentPerformance)
	for cur.Next(ctx) {
		var row domain.ContentPerformance
		if err := cur.Decode(&row); err != nil {
			return nil, adapter.MapError(err, "performance.StatsByContent")
		}
		stats[row.ContentID] = row
	}
	if err := cur.Err(); err != nil {
		return nil, adapter.MapError(err, "performance.StatsByContent")
	}
	return stats, nil
}
