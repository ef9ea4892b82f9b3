package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yt-insights/ytca/internal/models"
)

func publishedAt(m models.VideoMetric, t time.Time) models.VideoMetric {
	m.PublishedAt = t
	return m
}

func TestAnalyzeCadenceMondayEvenings(t *testing.T) {
	firstMonday := time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)

	var metrics []models.VideoMetric
	var total float64
	for i := 0; i < 10; i++ {
		vpd := float64(10 * (i + 1))
		total += vpd
		at := firstMonday.AddDate(0, 0, 7*i).Add(time.Duration(i) * 10 * time.Minute)
		metrics = append(metrics, publishedAt(metric("video", vpd), at))
	}

	cadence := AnalyzeCadence(metrics)

	assert.Equal(t, "Monday", cadence.BestDayOfWeek)
	assert.Equal(t, "evening", cadence.BestHourBucket)
	assert.InDelta(t, total/10, cadence.BestDayAvgVPD, 1e-9)
	assert.InDelta(t, total/10, cadence.BestHourAvgVPD, 1e-9)

	gap := 7 + 10.0/(24*60)
	assert.InDelta(t, gap, cadence.AvgDaysBetweenUploads, 1e-9)
	assert.InDelta(t, 7/gap, cadence.UploadsPerWeek, 1e-9)

	assert.Equal(t, []models.SlotAverage{{Slot: "Monday", Videos: 10, AvgVPD: cadence.BestDayAvgVPD}}, cadence.ByDayOfWeek)
	assert.Equal(t, []models.SlotAverage{{Slot: "evening", Videos: 10, AvgVPD: cadence.BestHourAvgVPD}}, cadence.ByHourBucket)
}

func TestAnalyzeCadenceTiesGoToEarlierSlot(t *testing.T) {
	sunday := time.Date(2026, 1, 4, 7, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)

	cadence := AnalyzeCadence([]models.VideoMetric{
		publishedAt(metric("late", 50), monday),
		publishedAt(metric("early", 50), sunday),
	})

	assert.Equal(t, "Sunday", cadence.BestDayOfWeek)
	assert.Equal(t, "morning", cadence.BestHourBucket)
	assert.Equal(t, []string{"Sunday", "Monday"}, slots(cadence.ByDayOfWeek))
	assert.Equal(t, []string{"morning", "night"}, slots(cadence.ByHourBucket))
	// Input order is reversed; the gap is measured after sorting.
	assert.InDelta(t, 40.0/24, cadence.AvgDaysBetweenUploads, 1e-9)
}

func TestAnalyzeCadenceSingleVideo(t *testing.T) {
	cadence := AnalyzeCadence([]models.VideoMetric{metric("only", 12)})
	assert.Equal(t, 0.0, cadence.AvgDaysBetweenUploads)
	assert.Equal(t, 0.0, cadence.UploadsPerWeek)
	assert.NotEmpty(t, cadence.BestDayOfWeek)
}

func TestAnalyzeCadenceSameTimestamp(t *testing.T) {
	at := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	cadence := AnalyzeCadence([]models.VideoMetric{
		publishedAt(metric("a", 1), at),
		publishedAt(metric("b", 2), at),
	})
	assert.Equal(t, 0.0, cadence.AvgDaysBetweenUploads)
	assert.Equal(t, 0.0, cadence.UploadsPerWeek)
	assert.Equal(t, "afternoon", cadence.BestHourBucket)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "night"},
		{5, "night"},
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{21, "evening"},
		{22, "night"},
		{23, "night"},
	}

	for _, tt := range tests {
		at := time.Date(2026, 1, 1, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, BucketFor(at).Name, "hour %d", tt.hour)
	}

	// Buckets are UTC regardless of the timestamp's zone.
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "night", BucketFor(time.Date(2026, 1, 1, 9, 0, 0, 0, tokyo)).Name)
}

func slots(averages []models.SlotAverage) []string {
	out := make([]string, 0, len(averages))
	for _, a := range averages {
		out = append(out, a.Slot)
	}
	return out
}
