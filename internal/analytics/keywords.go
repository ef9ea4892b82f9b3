package analytics

import (
	"sort"
	"unicode/utf8"

	"github.com/yt-insights/ytca/internal/models"
)

// DefaultKeywordLimit is how many keywords a report lists.
const DefaultKeywordLimit = 10

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "at": {}, "for": {}, "with": {}, "by": {}, "from": {}, "as": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "am": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "we": {}, "they": {}, "me": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "our": {}, "their": {}, "his": {}, "her": {},
	"what": {}, "which": {}, "who": {}, "how": {}, "why": {}, "when": {}, "where": {},
	"do": {}, "does": {}, "did": {}, "has": {}, "have": {}, "had": {}, "will": {}, "can": {},
	"if": {}, "so": {}, "not": {}, "no": {}, "just": {}, "about": {}, "into": {}, "than": {},
	"then": {}, "too": {}, "very": {}, "all": {}, "any": {}, "more": {}, "most": {},
	"up": {}, "out": {}, "over": {}, "get": {}, "got": {},
	"vs": {}, "versus": {}, "ft": {}, "feat": {}, "video": {}, "official": {}, "episode": {},
	"ep": {}, "part": {}, "shorts": {},
}

// ExtractKeywords counts title words across metrics, skipping stopwords and
// single characters. Results are ordered by count, ties by first appearance.
func ExtractKeywords(metrics []models.VideoMetric, limit int) []models.KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, m := range metrics {
		for _, token := range titleTokens(NormalizeTitle(m.Title)) {
			if utf8.RuneCountInString(token) <= 1 {
				continue
			}
			if _, skip := stopwords[token]; skip {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	keywords := make([]models.KeywordCount, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, models.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
