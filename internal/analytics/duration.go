package analytics

import (
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO-8601 style token such as "PT1H2M3S" into total
// seconds. Missing components count as zero and an unrecognized token yields 0.
func ParseDuration(token string) int {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0
	}
	return componentValue(match[1])*3600 + componentValue(match[2])*60 + componentValue(match[3])
}

func componentValue(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
