package models

import "time"

// RawVideo is one upload as consumed from the video platform. Missing optional
// fields are already defaulted by the ingestion layer.
type RawVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	Duration     string    `json:"duration"`
}

// VelocityLabel buckets a video's velocity score.
type VelocityLabel string

const (
	VelocityExploding       VelocityLabel = "Exploding"
	VelocityOutperforming   VelocityLabel = "Outperforming"
	VelocityBaseline        VelocityLabel = "Baseline"
	VelocityUnderperforming VelocityLabel = "Underperforming"
)

// VideoMetric is a RawVideo enriched with derived performance metrics
type VideoMetric struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	PublishedAt      time.Time     `json:"publishedAt"`
	ViewCount        int64         `json:"viewCount"`
	LikeCount        int64         `json:"likeCount"`
	CommentCount     int64         `json:"commentCount"`
	DurationSeconds  int           `json:"durationSeconds"`
	DaysSincePublish int           `json:"daysSincePublish"`
	ViewsPerDay      float64       `json:"viewsPerDay"`
	EngagementRate   *float64      `json:"engagementRate"`
	VelocityScore    float64       `json:"velocityScore"`
	VelocityLabel    VelocityLabel `json:"velocityLabel"`
}

// PlaylistPage is one page of an uploads playlist.
type PlaylistPage struct {
	VideoIDs   []string
	NextCursor string
}
