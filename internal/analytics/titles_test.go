package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yt-insights/ytca/internal/models"
)

func TestTitlePredicates(t *testing.T) {
	tests := []struct {
		title      string
		numbers    bool
		question   bool
		comparison bool
		emotional  bool
	}{
		{"Is Messi the GOAT? (2026 Preview)", true, true, false, true},
		{"Brazil versus Argentina", false, false, true, false},
		{"Real Madrid vs. Barcelona", false, false, true, false},
		{"Devs react to canvas tricks", false, false, false, false},
		{"The most INSANE finish ever", false, false, false, true},
		{"Top 10 goals", true, false, false, false},
		{"", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			normalized := NormalizeTitle(tt.title)
			assert.Equal(t, tt.numbers, HasNumbers(normalized), "numbers")
			assert.Equal(t, tt.question, HasQuestion(normalized), "question")
			assert.Equal(t, tt.comparison, HasComparison(normalized), "comparison")
			assert.Equal(t, tt.emotional, HasEmotionalKeyword(normalized), "emotional")
		})
	}
}

func TestAnalyzeTitles(t *testing.T) {
	t.Run("single title", func(t *testing.T) {
		tm := AnalyzeTitles([]models.VideoMetric{metric("Is Messi the GOAT? (2026 Preview)", 1)})
		assert.Equal(t, models.TitleMetrics{
			PctWithNumbers:    1,
			PctWithQuestion:   1,
			PctWithComparison: 0,
			PctWithEmotional:  1,
			AvgLength:         33,
			AvgWordCount:      6,
		}, tm)
	})

	t.Run("fractions over a set", func(t *testing.T) {
		tm := AnalyzeTitles([]models.VideoMetric{
			metric("Top 5 saves", 1),
			metric("Why he left", 1),
			metric("Spain vs Italy", 1),
			metric("Légende", 1),
		})
		assert.Equal(t, 0.25, tm.PctWithNumbers)
		assert.Equal(t, 0.0, tm.PctWithQuestion)
		assert.Equal(t, 0.25, tm.PctWithComparison)
		assert.Equal(t, (11.0+11+14+7)/4, tm.AvgLength)
		assert.Equal(t, (3.0+3+3+1)/4, tm.AvgWordCount)
	})

	t.Run("empty set is all zeros", func(t *testing.T) {
		assert.Equal(t, models.TitleMetrics{}, AnalyzeTitles(nil))
	})
}
