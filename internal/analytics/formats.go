package analytics

import (
	"regexp"
	"sort"

	"github.com/yt-insights/ytca/internal/models"
)

const maxClusterExamples = 3

// FormatPattern is a named title predicate over normalized text.
type FormatPattern struct {
	Name  string
	Match func(normalized string) bool
}

var topListPattern = regexp.MustCompile(`\btop\s*\d+\b`)

var formatPatterns = []FormatPattern{
	{Name: "Question", Match: HasQuestion},
	{Name: "Is statement", Match: wordMatcher("is")},
	{Name: "Why explainer", Match: wordMatcher("why")},
	{Name: "Best ranking", Match: wordMatcher("best")},
	{Name: "How-to", Match: wordMatcher("how to")},
	{Name: "Top-N list", Match: topListPattern.MatchString},
	{Name: "Versus matchup", Match: HasComparison},
	{Name: "Numbered", Match: HasNumbers},
	{Name: "Country / nationality", Match: MentionsCountry},
}

func wordMatcher(phrase string) func(string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	return re.MatchString
}

// ClusterFormats groups videos by title pattern. Patterns are not mutually
// exclusive: a video is counted in every cluster it matches rather than being
// assigned to a single best fit. Empty clusters are dropped and the rest are
// ordered by average views/day.
func ClusterFormats(metrics []models.VideoMetric) []models.FormatCluster {
	normalized := make([]string, len(metrics))
	for i, m := range metrics {
		normalized[i] = NormalizeTitle(m.Title)
	}

	clusters := make([]models.FormatCluster, 0, len(formatPatterns))
	for _, pattern := range formatPatterns {
		var vpds, engagements []float64
		examples := make([]string, 0, maxClusterExamples)
		for i, m := range metrics {
			if !pattern.Match(normalized[i]) {
				continue
			}
			vpds = append(vpds, m.ViewsPerDay)
			if m.EngagementRate != nil {
				engagements = append(engagements, *m.EngagementRate)
			}
			if len(examples) < maxClusterExamples {
				examples = append(examples, m.Title)
			}
		}
		if len(vpds) == 0 {
			continue
		}

		clusters = append(clusters, models.FormatCluster{
			Pattern:           pattern.Name,
			Count:             len(vpds),
			AvgViewsPerDay:    mean(vpds),
			AvgEngagementRate: meanOrNil(engagements),
			Examples:          examples,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].AvgViewsPerDay > clusters[j].AvgViewsPerDay
	})
	return clusters
}
