package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token    string
		expected int
	}{
		{"PT1H2M3S", 3723},
		{"PT15M", 900},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT1H30S", 3630},
		{"PT", 0},
		{"", 0},
		{"P1D", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.token))
		})
	}
}
