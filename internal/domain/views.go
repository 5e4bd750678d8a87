package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aggregated read models produced by the repository pipelines. These are
// join results, not stored documents; the bson tags describe the projected
// shape each pipeline emits.

// UserSummary is the denormalized user half of an activity row.
type UserSummary struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	ProfileImage *string            `bson:"profileImage"`
}

// ContentSummary is the denormalized content half of an activity row.
type ContentSummary struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

// ActivityEntry is one interaction event joined with its user and content.
type ActivityEntry struct {
	ID        primitive.ObjectID `bson:"_id"`
	EventType EventType          `bson:"eventType"`
	Timestamp time.Time          `bson:"timestamp"`
	User      UserSummary        `bson:"user"`
	Content   ContentSummary     `bson:"content"`
}

// TimelineEntry is one of a user's own events joined with its content title.
// Title is nil when the content no longer exists.
type TimelineEntry struct {
	ID        primitive.ObjectID `bson:"_id"`
	EventType EventType          `bson:"eventType"`
	Timestamp time.Time          `bson:"timestamp"`
	ContentID primitive.ObjectID `bson:"contentId"`
	Title     *string            `bson:"title"`
}

// ContentWithAuthor is a content item joined with its creator's display name.
type ContentWithAuthor struct {
	Content    `bson:",inline"`
	AuthorName string `bson:"authorName"`
}

// MemberOverview is one joined row of the member listing: membership fields
// merged with the user's profile and that user's own average score.
// AveragePerformance is nil for members with no performance rows.
type MemberOverview struct {
	UserID             primitive.ObjectID `bson:"userId"`
	Name               string             `bson:"name"`
	Email              string             `bson:"email"`
	ProfileImage       *string            `bson:"profileImage"`
	RegistrationDate   time.Time          `bson:"registrationDate"`
	Status             MemberStatus       `bson:"status"`
	BusinessName       *string            `bson:"businessName"`
	TIN                *string            `bson:"tin"`
	AveragePerformance *float64           `bson:"averagePerformance"`
}

// MemberScore is one active member paired with their lifetime average score.
// Average is nil for members with no performance rows.
type MemberScore struct {
	UserID  primitive.ObjectID `bson:"_id"`
	Average *float64           `bson:"average"`
}

// PerformanceEntry is one performance record joined with its content title.
// Title is nil when the referenced content no longer exists.
type PerformanceEntry struct {
	ContentID          primitive.ObjectID `bson:"contentId"`
	Title              *string            `bson:"title"`
	UnderstandingScore float64            `bson:"understandingScore"`
	UnderstandingLevel UnderstandingLevel `bson:"understandingLevel"`
	TotalTimeSeconds   int64              `bson:"totalTimeSeconds"`
}

// PerformanceSummary aggregates an institution's full performance history.
type PerformanceSummary struct {
	TotalRows          int64   `bson:"totalRows"`
	MasteredRows       int64   `bson:"masteredRows"`
	AverageScore       float64 `bson:"averageScore"`
	AverageTimeSeconds float64 `bson:"averageTimeSeconds"`
}

// ContentPerformance aggregates the performance rows of one content item.
type ContentPerformance struct {
	ContentID          primitive.ObjectID `bson:"_id"`
	EnrolledUsers      int64              `bson:"enrolledUsers"`
	MasteredUsers      int64              `bson:"masteredUsers"`
	AverageScore       float64            `bson:"averageScore"`
	AverageTimeSeconds float64            `bson:"averageTimeSeconds"`
}
