package dashboard

// CountStat pairs a headline count with its change over the trailing
// 30 days.
type CountStat struct {
	Value  int64
	Change int64
}

// ScoreStat pairs an average score with its change versus the 30 days
// before the trailing window.
type ScoreStat struct {
	Value  float64
	Change float64
}

// Stats holds the four dashboard headline figures.
type Stats struct {
	EnrolledUsers    CountStat
	PendingUsers     CountStat
	PublishedContent CountStat
	AverageProgress  ScoreStat
}
