package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		mood int
		want string
	}{
		{1, "Angry"},
		{2, "Stressed"},
		{3, "Very Sad"},
		{4, "Sad"},
		{5, "Neutral"},
		{6, "Happy"},
		{7, "Very Happy"},
		{8, "Excited"},
		{0, "Unknown"},
		{9, "Unknown"},
		{-3, "Unknown"},
		{100, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.mood), "mood %d", tt.mood)
	}
}

func TestWellnessScoreClamps(t *testing.T) {
	tests := []struct {
		mood int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{4, 4},
		{8, 8},
		{9, 8},
		{100, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WellnessScore(tt.mood), "mood %d", tt.mood)
	}
}
