package analytics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yt-insights/ytca/internal/models"
)

var (
	digitPattern      = regexp.MustCompile(`[0-9]`)
	comparisonPattern = regexp.MustCompile(`\b(?:vs|versus)\b`)
	nonAlnumPattern   = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

var emotionalKeywords = map[string]struct{}{
	"insane":        {},
	"crazy":         {},
	"legendary":     {},
	"epic":          {},
	"shocking":      {},
	"unbelievable":  {},
	"incredible":    {},
	"amazing":       {},
	"worst":         {},
	"greatest":      {},
	"goat":          {},
	"ultimate":      {},
	"brutal":        {},
	"savage":        {},
	"unreal":        {},
	"biggest":       {},
	"destroyed":     {},
	"heartbreaking": {},
	"historic":      {},
	"massive":       {},
	"wild":          {},
	"terrifying":    {},
	"impossible":    {},
	"genius":        {},
	"disaster":      {},
}

// NormalizeTitle lower-cases a title for the pattern predicates below.
func NormalizeTitle(title string) string {
	return strings.ToLower(title)
}

// HasNumbers reports whether a normalized title contains any digit.
func HasNumbers(normalized string) bool {
	return digitPattern.MatchString(normalized)
}

func HasQuestion(normalized string) bool {
	return strings.Contains(normalized, "?")
}

// HasComparison matches "vs" or "versus" as standalone words.
func HasComparison(normalized string) bool {
	return comparisonPattern.MatchString(normalized)
}

func HasEmotionalKeyword(normalized string) bool {
	for _, token := range titleTokens(normalized) {
		if _, ok := emotionalKeywords[token]; ok {
			return true
		}
	}
	return false
}

func titleTokens(normalized string) []string {
	return strings.Fields(nonAlnumPattern.ReplaceAllString(normalized, " "))
}

// AnalyzeTitles aggregates title structure over a quartile. An empty set
// yields all zeros.
func AnalyzeTitles(metrics []models.VideoMetric) models.TitleMetrics {
	if len(metrics) == 0 {
		return models.TitleMetrics{}
	}

	var numbers, questions, comparisons, emotional int
	var totalLength, totalWords int
	for _, m := range metrics {
		normalized := NormalizeTitle(m.Title)
		if HasNumbers(normalized) {
			numbers++
		}
		if HasQuestion(normalized) {
			questions++
		}
		if HasComparison(normalized) {
			comparisons++
		}
		if HasEmotionalKeyword(normalized) {
			emotional++
		}
		totalLength += utf8.RuneCountInString(m.Title)
		totalWords += len(strings.Fields(strings.TrimSpace(m.Title)))
	}

	n := float64(len(metrics))
	return models.TitleMetrics{
		PctWithNumbers:    float64(numbers) / n,
		PctWithQuestion:   float64(questions) / n,
		PctWithComparison: float64(comparisons) / n,
		PctWithEmotional:  float64(emotional) / n,
		AvgLength:         float64(totalLength) / n,
		AvgWordCount:      float64(totalWords) / n,
	}
}
