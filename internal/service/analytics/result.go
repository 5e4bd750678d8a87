package analytics

import "go.mongodb.org/mongo-driver/bson/primitive"

// Overview holds the institution-wide headline analytics.
type Overview struct {
	AvgEngagement     float64
	CompletionRate    float64
	ActiveLearners30d int64
	AvgStudyHours     float64
}

// ContentBreakdownRow is the per-content analytics row. Content items with
// zero performance rows appear with zero-valued figures.
type ContentBreakdownRow struct {
	ContentID          primitive.ObjectID
	Title              string
	EnrolledUsers      int64
	CompletionRate     float64
	AverageScore       float64
	AverageTimeSeconds float64
}

// Segment is one user-segmentation bucket with its share of the active
// member base.
type Segment struct {
	Label      string
	Count      int64
	Percentage float64
}

// Data is the full analytics payload.
type Data struct {
	Overview         Overview
	ContentBreakdown []ContentBreakdownRow
	UserSegmentation []Segment
}
