package analytics

import (
	"sort"

	"github.com/yt-insights/ytca/internal/models"
)

// Quartiles holds the ranked set and its top and bottom slices.
type Quartiles struct {
	Ranked []models.VideoMetric
	Top    []models.VideoMetric
	Bottom []models.VideoMetric
	Size   int
}

// RankByViewsPerDay returns a copy sorted descending by views/day. Ties keep
// input order.
func RankByViewsPerDay(metrics []models.VideoMetric) []models.VideoMetric {
	ranked := make([]models.VideoMetric, len(metrics))
	copy(ranked, metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewsPerDay > ranked[j].ViewsPerDay
	})
	return ranked
}

// Segment slices the ranked set into quartiles of max(1, n/4) videos.
//
// With n <= 2*size the top and bottom slices overlap (for n == 1 they are the
// same video). That is left as is rather than shrinking either side.
func Segment(metrics []models.VideoMetric) Quartiles {
	ranked := RankByViewsPerDay(metrics)
	n := len(ranked)
	if n == 0 {
		return Quartiles{Ranked: ranked}
	}

	size := max(1, n/4)
	return Quartiles{
		Ranked: ranked,
		Top:    ranked[:size],
		Bottom: ranked[n-size:],
		Size:   size,
	}
}
