package analytics

import (
	"time"

	"github.com/yt-insights/ytca/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func metric(title string, vpd float64) models.VideoMetric {
	return models.VideoMetric{
		ID:               title,
		Title:            title,
		PublishedAt:      testNow.AddDate(0, 0, -10),
		DaysSincePublish: 10,
		ViewsPerDay:      vpd,
	}
}

func withEngagement(m models.VideoMetric, rate float64) models.VideoMetric {
	m.EngagementRate = &rate
	return m
}

func ptr(v float64) *float64 {
	return &v
}
