// Package membership implements the InstitutionMember repository backed by
// MongoDB. It owns the member-centric aggregation pipelines: status counts,
// per-member performance averages, and the joined member listing.
package membership

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

// Repo provides institution-membership persistence and aggregation.
type Repo struct {
	c *mongo.Collection
}

// New creates a new membership repository.
func New(db *mongo.Database) *Repo {
	return &Repo{c: db.Collection("institution_members")}
}

// CountByStatus returns the number of memberships in the institution with
// the given status. An empty status counts all memberships.
func (r *Repo) CountByStatus(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus) (int64, error) {
	filter := bson.M{"institutionId": institutionID}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return 0, adapter.MapError(err, "membership.CountByStatus")
	}
	return n, nil
}

// CountByStatusCreatedBefore is CountByStatus restricted to memberships
// created strictly before the cutoff. Used for period-over-period deltas.
func (r *Repo) CountByStatusCreatedBefore(ctx context.Context, institutionID primitive.ObjectID, status domain.MemberStatus, before time.Time) (int64, error) {
	filter := bson.M{
		"institutionId": institutionID,
		"createdAt":     bson.M{"$lt": before},
	}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return 0, adapter.MapError(err, "membership.CountByStatusCreatedBefore")
	}
	return n, nil
}

// ListUserIDs returns the user IDs of every member of the institution,
// regardless of status.
func (r *Repo) ListUserIDs(ctx context.Context, institutionID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"userId": 1})
	cur, err := r.c.Find(ctx, bson.M{"institutionId": institutionID}, opts)
	if err != nil {
		return nil, adapter.MapError(err, "membership.ListUserIDs")
	}
	defer cur.Close(ctx)

	var ids []primitive.ObjectID
	for cur.Next(ctx) {
		var row struct {
			UserID primitive.ObjectID `bson:"userId"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, adapter.MapError(err, "membership.ListUserIDs")
		}
		ids = append(ids, row.UserID)
	}
	if err := cur.Err(); err != nil {
		return nil, adapter.MapError(err, "membership.ListUserIDs")
	}
	return ids, nil
}

// GetByUser returns the membership linking the user to the institution.
// Returns domain.ErrNotFound if the user is not a member — callers surface
// this as-is so out-of-tenant lookups do not confirm existence.
func (r *Repo) GetByUser(ctx context.Context, institutionID, userID primitive.ObjectID) (*domain.InstitutionMember, error) {
	var m domain.InstitutionMember
	err := r.c.FindOne(ctx, bson.M{"institutionId": institutionID, "userId": userID}).Decode(&m)
	if err != nil {
		return nil, adapter.MapError(err, "membership.GetByUser")
	}
	return &m, nil
}

// UpdateStatus sets the membership status for (institution, user) and
// returns the updated document. Returns domain.ErrNotFound if no membership
// matches the tenant scope.
func (r *Repo) UpdateStatus(ctx context.Context, institutionID, userID primitive.ObjectID, status domain.MemberStatus) (*domain.InstitutionMember, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m domain.InstitutionMember
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"institutionId": institutionID, "userId": userID},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&m)
	if err != nil {
		return nil, adapter.MapError(err, "membership.UpdateStatus")
	}
	return &m, nil
}

// AverageActivePerformance returns the mean understanding score across all
// performance rows belonging to the institution's active members. Members
// with no performance rows contribute no score (the join preserves them but
// $avg skips the resulting nulls, so the average is over actual records).
// Returns 0 when no performance rows exist.
func (r *Repo) AverageActivePerformance(ctx context.Context, institutionID primitive.ObjectID) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"institutionId": institutionID, "status": domain.MemberActive}},
		{"$lookup": bson.M{
			"from":         "performances",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "performanceRecords",
		}},
		{"$unwind": bson.M{"path": "$performanceRecords", "preserveNullAndEmptyArrays": true}},
		{"$group": bson.M{
			"_id":            nil,
			"avgPerformance": bson.M{"$avg": "$performanceRecords.understandingScore"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, adapter.MapError(err, "membership.AverageActivePerformance")
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			AvgPerformance *float64 `bson:"avgPerformance"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, adapter.MapError(err, "membership.AverageActivePerformance")
		}
		if row.AvgPerformance != nil {
			return *row.AvgPerformance, nil
		}
	}
	return 0, nil
}

// ListWithPerformance returns all members of the institution joined with
// user profiles and each member's average understanding score, sorted by
// registration date descending. AveragePerformance is nil for members with
// no performance rows.
func (r *Repo) ListWithPerformance(ctx context.Context, institutionID primitive.ObjectID) ([]domain.MemberOverview, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"institutionId": institutionID}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "userDoc",
		}},
		{"$unwind": "$userDoc"},
		{"$lookup": bson.M{
			"from":         "performances",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "performanceRecords",
		}},
		{"$project": bson.M{
			"userId":             "$userDoc._id",
			"name":               "$userDoc.name",
			"email":              "$userDoc.email",
			"profileImage":       "$userDoc.profileImage",
			"registrationDate":   "$createdAt",
			"status":             "$status",
			"businessName":       "$metadata.businessName",
			"tin":                "$metadata.tin",
			"averagePerformance": bson.M{"$avg": "$performanceRecords.understandingScore"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "membership.ListWithPerformance")
	}
	defer cur.Close(ctx)

	var rows []domain.MemberOverview
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "membership.ListWithPerformance")
	}
	return rows, nil
}

// ActiveMemberAverages returns each active member's average understanding
// score, nil when the member has no performance rows. One row per active
// member.
func (r *Repo) ActiveMemberAverages(ctx context.Context, institutionID primitive.ObjectID) ([]domain.MemberScore, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"institutionId": institutionID, "status": domain.MemberActive}},
		{"$lookup": bson.M{
			"from":         "performances",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "performanceRecords",
		}},
		{"$project": bson.M{
			"_id":     "$userId",
			"average": bson.M{"$avg": "$performanceRecords.understandingScore"},
		}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, adapter.MapError(err, "membership.ActiveMemberAverages")
	}
	defer cur.Close(ctx)

	var rows []domain.MemberScore
	if err := cur.All(ctx, &rows); err != nil {
		return nil, adapter.MapError(err, "membership.ActiveMemberAverages")
	}
	return rows, nil
}
