package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnderstandingLevel is the categorical learning-outcome grade.
type UnderstandingLevel string

const (
	UnderstandingStruggling UnderstandingLevel = "struggling"
	UnderstandingDeveloping UnderstandingLevel = "developing"
	UnderstandingProficient UnderstandingLevel = "proficient"
	UnderstandingMastered   UnderstandingLevel = "mastered"
)

// Performance records one user's learning outcome on one content item.
// One row per (user, content) pair is expected but not enforced here.
type Performance struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserID             primitive.ObjectID `bson:"userId"`
	ContentID          primitive.ObjectID `bson:"contentId"`
	UnderstandingScore float64            `bson:"understandingScore"`
	UnderstandingLevel UnderstandingLevel `bson:"understandingLevel"`
	TotalTimeSeconds   int64              `bson:"totalTimeSeconds"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

// EventType classifies an interaction log entry.
type EventType string

const (
	EventStart  EventType = "start"
	EventEnd    EventType = "end"
	EventUpdate EventType = "update"
)

// Interaction is an append-only event log entry. Never mutated, only
// appended and read.
type Interaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	ContentID primitive.ObjectID `bson:"contentId"`
	EventType EventType          `bson:"eventType"`
	Timestamp time.Time          `bson:"timestamp"`
}
