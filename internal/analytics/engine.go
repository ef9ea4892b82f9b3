package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yt-insights/ytca/internal/logging"
	"github.com/yt-insights/ytca/internal/models"
)

// ListLimit is the length of the top and bottom video lists in a report.
const ListLimit = 15

// Engine runs the full analytics pipeline against a VideoSource.
type Engine struct {
	source VideoSource
	now    func() time.Time
	log    zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine reading from source
func NewEngine(source VideoSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
		log:    logging.WithComponent("analytics"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze fetches a channel's recent uploads and builds a fresh report.
func (e *Engine) Analyze(ctx context.Context, channelID string, maxResults int) (*models.AnalyticsReport, error) {
	start := e.now()
	raws, err := Fetch(ctx, e.source, channelID, maxResults)
	if err != nil {
		return nil, err
	}
	e.log.Debug().
		Str("channel_id", channelID).
		Int("videos", len(raws)).
		Dur("fetch", e.now().Sub(start)).
		Msg("fetched uploads")

	return BuildReport(channelID, raws, e.now())
}

// BuildReport is the pure part of the pipeline: metrics, velocity, quartiles,
// the comparative analyzers and the synthesized summary. An empty input is an
// error rather than an empty report.
func BuildReport(channelID string, raws []models.RawVideo, now time.Time) (*models.AnalyticsReport, error) {
	if len(raws) == 0 {
		return nil, ErrNoVideos
	}

	metrics := make([]models.VideoMetric, 0, len(raws))
	for _, raw := range raws {
		metrics = append(metrics, NewVideoMetric(raw, now))
	}
	channelAvg := ChannelAverage(metrics)
	metrics = ApplyVelocity(metrics, channelAvg)

	quartiles := Segment(metrics)
	titles := models.TitleAnalysis{
		TopQuartile:    AnalyzeTitles(quartiles.Top),
		BottomQuartile: AnalyzeTitles(quartiles.Bottom),
	}
	cadence := AnalyzeCadence(metrics)
	clusters := ClusterFormats(metrics)
	distribution := Distribution(metrics)

	summary := models.Summary{
		AvgDurationTop:       averageDuration(quartiles.Top),
		AvgDurationBottom:    averageDuration(quartiles.Bottom),
		AvgEngagementTop:     averageEngagement(quartiles.Top),
		AvgEngagementBottom:  averageEngagement(quartiles.Bottom),
		TopTitleKeywords:     ExtractKeywords(quartiles.Top, DefaultKeywordLimit),
		VelocityDistribution: distribution,
	}

	insights := Synthesize(InsightInput{
		VideoCount:        len(metrics),
		ChannelAvgVPD:     channelAvg,
		Distribution:      distribution,
		AvgDurationTop:    summary.AvgDurationTop,
		AvgDurationBottom: summary.AvgDurationBottom,
		Titles:            titles,
		Cadence:           cadence,
		Clusters:          clusters,
	})

	return &models.AnalyticsReport{
		ChannelID:      channelID,
		ChannelAvgVPD:  round(channelAvg, 1),
		VideoCount:     len(metrics),
		Summary:        summary,
		TopVideos:      topVideos(quartiles.Ranked),
		BottomVideos:   bottomVideos(quartiles.Ranked),
		TitleAnalysis:  titles,
		UploadCadence:  cadence,
		FormatClusters: clusters,
		AISummary:      insights,
		GeneratedAt:    now.UTC(),
	}, nil
}

// averageDuration ignores videos without a parseable duration.
func averageDuration(metrics []models.VideoMetric) *float64 {
	var durations []float64
	for _, m := range metrics {
		if m.DurationSeconds > 0 {
			durations = append(durations, float64(m.DurationSeconds))
		}
	}
	return meanOrNil(durations)
}

func averageEngagement(metrics []models.VideoMetric) *float64 {
	var rates []float64
	for _, m := range metrics {
		if m.EngagementRate != nil {
			rates = append(rates, *m.EngagementRate)
		}
	}
	return meanOrNil(rates)
}

func topVideos(ranked []models.VideoMetric) []models.VideoMetric {
	n := min(ListLimit, len(ranked))
	out := make([]models.VideoMetric, n)
	copy(out, ranked[:n])
	return out
}

// bottomVideos lists the weakest videos, worst first.
func bottomVideos(ranked []models.VideoMetric) []models.VideoMetric {
	n := min(ListLimit, len(ranked))
	out := make([]models.VideoMetric, 0, n)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		out = append(out, ranked[i])
	}
	return out
}
