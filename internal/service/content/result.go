package content

import "github.com/lumohq/lumo-backend/internal/domain"

// Stats holds the aggregate content figures for an institution.
type Stats struct {
	TotalContent     int64
	PublishedContent int64
	AvgEngagement    float64
}

// Module is one listed content item annotated with its engagement rate:
// completions over active members, as a percentage.
type Module struct {
	domain.ContentWithAuthor
	EngagementRate float64
}
