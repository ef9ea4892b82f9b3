package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yt-insights/ytca/internal/models"
)

func TestBuildReportQuartileScenario(t *testing.T) {
	published := testNow.AddDate(0, 0, -10)
	raws := []models.RawVideo{
		{ID: "c", Title: "Third", PublishedAt: published, ViewCount: 2000, Duration: "PT6M40S"},
		{ID: "a", Title: "First", PublishedAt: published, ViewCount: 4000, Duration: "PT10M"},
		{ID: "d", Title: "Fourth", PublishedAt: published, ViewCount: 1000, Duration: "PT5M"},
		{ID: "b", Title: "Second", PublishedAt: published, ViewCount: 3000, Duration: "PT8M20S"},
	}

	report, err := BuildReport("UC1", raws, testNow)
	require.NoError(t, err)

	assert.Equal(t, "UC1", report.ChannelID)
	assert.Equal(t, 4, report.VideoCount)
	assert.Equal(t, 250.0, report.ChannelAvgVPD)

	require.NotNil(t, report.Summary.AvgDurationTop)
	require.NotNil(t, report.Summary.AvgDurationBottom)
	assert.Equal(t, 600.0, *report.Summary.AvgDurationTop)
	assert.Equal(t, 300.0, *report.Summary.AvgDurationBottom)
	require.NotNil(t, report.Summary.AvgEngagementTop, "zero likes and comments still give a rate")
	assert.Equal(t, 0.0, *report.Summary.AvgEngagementTop)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(report.TopVideos))
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(report.BottomVideos))
	assert.Equal(t, models.VelocityExploding, report.TopVideos[0].VelocityLabel)

	assert.Equal(t, models.VelocityDistribution{Exploding: 1, Outperforming: 1, Underperforming: 2}, report.Summary.VelocityDistribution)
	assert.Contains(t, report.AISummary.KeyObservations,
		"Top-quartile videos run 5m 00s longer than bottom-quartile videos (10m 00s vs 5m 00s).")
	assert.GreaterOrEqual(t, len(report.AISummary.RecommendedExperiments), minExperiments)
	assert.LessOrEqual(t, len(report.AISummary.RecommendedExperiments), maxExperiments)
	assert.Equal(t, testNow, report.GeneratedAt)
}

func TestBuildReportChannelAverage(t *testing.T) {
	raws := []models.RawVideo{
		{ID: "1", PublishedAt: testNow.Add(-3 * 24 * time.Hour), ViewCount: 1000},
		{ID: "2", PublishedAt: testNow.Add(-50 * time.Hour), ViewCount: 500},
		{ID: "3", PublishedAt: testNow.Add(-time.Hour), ViewCount: 10},
	}

	report, err := BuildReport("UC1", raws, testNow)
	require.NoError(t, err)

	expected := (1000.0/3 + 500.0/2 + 10.0/1) / 3
	assert.InDelta(t, expected, report.ChannelAvgVPD, 0.05)
	assert.Equal(t, 197.8, report.ChannelAvgVPD)
}

func TestBuildReportListsAreCapped(t *testing.T) {
	raws := make([]models.RawVideo, 0, 40)
	for i := 0; i < 40; i++ {
		raws = append(raws, models.RawVideo{
			ID:          fmt.Sprintf("v%02d", i),
			Title:       "Upload",
			PublishedAt: testNow.AddDate(0, 0, -(i + 1)),
			ViewCount:   int64(10000 - i*100),
		})
	}

	report, err := BuildReport("UC1", raws, testNow)
	require.NoError(t, err)

	assert.Len(t, report.TopVideos, ListLimit)
	assert.Len(t, report.BottomVideos, ListLimit)
	assert.Equal(t, "v00", report.TopVideos[0].ID)
	assert.Equal(t, "v39", report.BottomVideos[0].ID)
	assert.Len(t, report.Summary.TopTitleKeywords, 1)
	assert.Equal(t, models.KeywordCount{Word: "upload", Count: 10}, report.Summary.TopTitleKeywords[0])
}

func TestBuildReportEmpty(t *testing.T) {
	report, err := BuildReport("UC1", nil, testNow)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNoVideos)
}

func TestEngineAnalyze(t *testing.T) {
	src := &fakeSource{total: 8}
	engine := NewEngine(src, WithClock(func() time.Time { return testNow }))

	report, err := engine.Analyze(context.Background(), "UC1", 0)
	require.NoError(t, err)

	assert.Equal(t, 8, report.VideoCount)
	assert.Equal(t, testNow, report.GeneratedAt)
	assert.NotEmpty(t, report.AISummary.KeyObservations)
}

func TestEngineAnalyzePropagatesErrors(t *testing.T) {
	src := &fakeSource{total: 8, uploadsErr: ErrNoUploads}
	engine := NewEngine(src)

	_, err := engine.Analyze(context.Background(), "UC1", 10)
	assert.ErrorIs(t, err, ErrNoUploads)
}
