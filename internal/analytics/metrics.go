package analytics

import (
	"math"
	"time"

	"github.com/yt-insights/ytca/internal/models"
)

const secondsPerDay = 86400

const (
	explodingThreshold     = 1.5
	outperformingThreshold = 1.1
	baselineThreshold      = 0.9
)

// NewVideoMetric derives per-video metrics as of now. Velocity fields stay
// empty until the channel average is known, see ApplyVelocity.
//
// Videos younger than a day count as one day old, which understates their
// velocity but keeps views/day finite.
func NewVideoMetric(raw models.RawVideo, now time.Time) models.VideoMetric {
	days := int(math.Floor(now.Sub(raw.PublishedAt).Seconds() / secondsPerDay))
	if days < 1 {
		days = 1
	}

	var engagement *float64
	if raw.ViewCount > 0 {
		rate := float64(raw.LikeCount+raw.CommentCount) / float64(raw.ViewCount)
		engagement = &rate
	}

	return models.VideoMetric{
		ID:               raw.ID,
		Title:            raw.Title,
		PublishedAt:      raw.PublishedAt,
		ViewCount:        raw.ViewCount,
		LikeCount:        raw.LikeCount,
		CommentCount:     raw.CommentCount,
		DurationSeconds:  ParseDuration(raw.Duration),
		DaysSincePublish: days,
		ViewsPerDay:      float64(raw.ViewCount) / float64(days),
		EngagementRate:   engagement,
	}
}

// ChannelAverage is the mean views/day over the whole fetched set.
func ChannelAverage(metrics []models.VideoMetric) float64 {
	vpds := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		vpds = append(vpds, m.ViewsPerDay)
	}
	return mean(vpds)
}

// ClassifyVelocity scores views/day relative to the channel average. Each band
// includes its lower bound.
func ClassifyVelocity(viewsPerDay, channelAvg float64) (float64, models.VelocityLabel) {
	if channelAvg == 0 {
		channelAvg = 1
	}
	score := viewsPerDay / channelAvg

	switch {
	case score >= explodingThreshold:
		return score, models.VelocityExploding
	case score >= outperformingThreshold:
		return score, models.VelocityOutperforming
	case score >= baselineThreshold:
		return score, models.VelocityBaseline
	default:
		return score, models.VelocityUnderperforming
	}
}

// ApplyVelocity returns a copy of metrics with velocity score and label set.
func ApplyVelocity(metrics []models.VideoMetric, channelAvg float64) []models.VideoMetric {
	scored := make([]models.VideoMetric, len(metrics))
	for i, m := range metrics {
		m.VelocityScore, m.VelocityLabel = ClassifyVelocity(m.ViewsPerDay, channelAvg)
		scored[i] = m
	}
	return scored
}

// Distribution counts videos per velocity label.
func Distribution(metrics []models.VideoMetric) models.VelocityDistribution {
	var dist models.VelocityDistribution
	for _, m := range metrics {
		switch m.VelocityLabel {
		case models.VelocityExploding:
			dist.Exploding++
		case models.VelocityOutperforming:
			dist.Outperforming++
		case models.VelocityBaseline:
			dist.Baseline++
		case models.VelocityUnderperforming:
			dist.Underperforming++
		}
	}
	return dist
}
