package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pariz/gountries"
)

// Names that titles use but the country database spells differently.
var extraCountryTerms = []string{
	"usa", "america", "uk", "britain", "england", "scotland", "wales",
	"english", "scottish", "welsh", "holland", "korea", "korean",
}

var plainTermPattern = regexp.MustCompile(`^[a-z][a-z .'-]*[a-z]$`)

var countryPattern = buildCountryPattern()

// buildCountryPattern compiles every country name and nationality into one
// word-bounded alternation. Terms with non-ASCII letters are skipped since
// \b only sees ASCII word characters.
func buildCountryPattern() *regexp.Regexp {
	seen := make(map[string]struct{})
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) < 3 || !plainTermPattern.MatchString(term) {
			return
		}
		seen[term] = struct{}{}
	}

	for _, country := range gountries.New().FindAllCountries() {
		add(country.Name.Common)
		add(country.Nationality)
	}
	for _, term := range extraCountryTerms {
		add(term)
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, regexp.QuoteMeta(term))
	}
	// Longest first so "south korea" wins over "korea".
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	return regexp.MustCompile(`\b(?:` + strings.Join(terms, "|") + `)\b`)
}

// MentionsCountry reports whether a normalized title names a country or
// nationality.
func MentionsCountry(normalized string) bool {
	return countryPattern.MatchString(normalized)
}
