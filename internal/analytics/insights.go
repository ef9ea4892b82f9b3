package analytics

import (
	"fmt"
	"math"

	"github.com/yt-insights/ytca/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	durationGapSeconds = 30.0
	titleGapThreshold  = 0.05
	// Absorbs float error so a 25% vs 20% split still counts as 5 points.
	gapEpsilon = 1e-9

	minExperiments = 3
	maxExperiments = 5
)

var genericExperiments = []string{
	"A/B test two thumbnails on the next upload and keep the one with the higher click-through rate after 48 hours.",
	"A/B test a question-style title against a statement title on two comparable uploads.",
	"A/B test a title under 50 characters against the channel's usual title length.",
}

// InsightInput is everything the synthesizer reads. It is assembled from the
// outputs of the other stages.
type InsightInput struct {
	VideoCount        int
	ChannelAvgVPD     float64
	Distribution      models.VelocityDistribution
	AvgDurationTop    *float64
	AvgDurationBottom *float64
	Titles            models.TitleAnalysis
	Cadence           models.UploadCadence
	Clusters          []models.FormatCluster
}

// titleGap is the top-minus-bottom difference of one title feature.
type titleGap struct {
	top, bottom float64
}

func (g titleGap) fired() bool {
	return math.Abs(g.top-g.bottom) >= titleGapThreshold-gapEpsilon
}

func (g titleGap) positive() bool {
	return g.fired() && g.top > g.bottom
}

// Synthesize turns the aggregate statistics into observations and experiments
// using fixed threshold rules.
func Synthesize(in InsightInput) models.AISummary {
	numerals := titleGap{top: in.Titles.TopQuartile.PctWithNumbers, bottom: in.Titles.BottomQuartile.PctWithNumbers}
	emotional := titleGap{top: in.Titles.TopQuartile.PctWithEmotional, bottom: in.Titles.BottomQuartile.PctWithEmotional}

	observations := []string{velocityObservation(in)}
	if s, ok := durationObservation(in.AvgDurationTop, in.AvgDurationBottom); ok {
		observations = append(observations, s)
	}
	if numerals.fired() {
		observations = append(observations, numeralsObservation(numerals))
	}
	if emotional.fired() {
		observations = append(observations, emotionalObservation(emotional))
	}
	if in.Cadence.BestDayOfWeek != "" {
		observations = append(observations, cadenceObservation(in.Cadence))
	}
	if len(in.Clusters) > 0 {
		observations = append(observations, formatObservation(in.Clusters))
	}

	return models.AISummary{
		KeyObservations:        observations,
		RecommendedExperiments: experiments(in, numerals, emotional),
	}
}

func velocityObservation(in InsightInput) string {
	ahead := in.Distribution.Exploding + in.Distribution.Outperforming
	return fmt.Sprintf(
		"%d of %d videos are Exploding or Outperforming against the channel average of %.1f views/day; %d are Underperforming.",
		ahead, in.VideoCount, in.ChannelAvgVPD, in.Distribution.Underperforming)
}

func durationObservation(top, bottom *float64) (string, bool) {
	if top == nil || bottom == nil {
		return "", false
	}
	diff := *top - *bottom
	if math.Abs(diff) <= durationGapSeconds {
		return "", false
	}
	direction := "longer"
	if diff < 0 {
		direction = "shorter"
	}
	return fmt.Sprintf("Top-quartile videos run %s %s than bottom-quartile videos (%s vs %s).",
		humanDuration(math.Abs(diff)), direction, humanDuration(*top), humanDuration(*bottom)), true
}

func numeralsObservation(g titleGap) string {
	correlation := "stronger"
	if !g.positive() {
		correlation = "weaker"
	}
	return fmt.Sprintf("%.0f%% of top-quartile titles contain numbers vs %.0f%% of bottom-quartile titles; numerals go with %s performance.",
		g.top*100, g.bottom*100, correlation)
}

func emotionalObservation(g titleGap) string {
	if g.positive() {
		return fmt.Sprintf("High-intensity words appear in %.0f%% of top-quartile titles vs %.0f%% of bottom-quartile titles; the audience rewards hype.",
			g.top*100, g.bottom*100)
	}
	return fmt.Sprintf("High-intensity words appear in only %.0f%% of top-quartile titles vs %.0f%% of bottom-quartile titles; hype wording underperforms here.",
		g.top*100, g.bottom*100)
}

func cadenceObservation(c models.UploadCadence) string {
	return fmt.Sprintf("The channel uploads every %.1f days on average (%.1f uploads/week); %s %s uploads (%s) perform best at %.1f avg views/day.",
		c.AvgDaysBetweenUploads, c.UploadsPerWeek, c.BestDayOfWeek, c.BestHourBucket, BucketWindow(c.BestHourBucket), c.BestDayAvgVPD)
}

func formatObservation(clusters []models.FormatCluster) string {
	best := clusters[0]
	s := fmt.Sprintf("'%s' titles lead all formats at %.1f avg views/day across %d videos", best.Pattern, best.AvgViewsPerDay, best.Count)
	if len(clusters) > 1 {
		second := clusters[1]
		s += fmt.Sprintf(", ahead of '%s' at %.1f", second.Pattern, second.AvgViewsPerDay)
	}
	return s + "."
}

func experiments(in InsightInput, numerals, emotional titleGap) []string {
	var out []string

	if in.AvgDurationTop != nil {
		out = append(out, fmt.Sprintf(
			"Replicate the top-quartile runtime: aim for about %s on the next 3 uploads and compare views/day with the channel average.",
			humanDuration(*in.AvgDurationTop)))
	}

	if in.Cadence.BestDayOfWeek != "" {
		slot := cases.Title(language.English).String(in.Cadence.BestDayOfWeek + " " + in.Cadence.BestHourBucket)
		out = append(out, fmt.Sprintf(
			"Publish the next 4 uploads in the %s slot (%s) and measure views/day against the %.1f channel average.",
			slot, BucketWindow(in.Cadence.BestHourBucket), in.ChannelAvgVPD))
	}

	if len(in.Clusters) > 0 {
		out = append(out, fmt.Sprintf("Build a 3-video series in the '%s' format, the channel's strongest title pattern.", in.Clusters[0].Pattern))
	}

	if numerals.positive() {
		out = append(out, fmt.Sprintf(
			"Put a concrete number (a count, a year or a ranking) in the next 3 titles; %.0f%% of top-quartile titles already do.",
			numerals.top*100))
	}

	if emotional.fired() {
		if emotional.positive() {
			out = append(out, "Lead the next 3 titles with one high-intensity word such as \"insane\" or \"legendary\" and track views/day.")
		} else {
			out = append(out, "Drop hype words from the next 3 titles and test plain descriptive phrasing instead.")
		}
	}

	for i := 0; len(out) < minExperiments && i < len(genericExperiments); i++ {
		out = append(out, genericExperiments[i])
	}

	if len(out) > maxExperiments {
		out = out[:maxExperiments]
	}
	return out
}

// humanDuration renders seconds as "4m 05s" or "1h 02m 03s".
func humanDuration(seconds float64) string {
	total := int(math.Round(seconds))
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}
