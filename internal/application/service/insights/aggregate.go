package insights

import (
	"fmt"
	"strings"

	"github.com/symptocare/symptocare/internal/types"
)

// FormatEntry renders one transcript line for a normalized entry.
func FormatEntry(entry types.MoodEntry) string {
	dateStr := "Unknown date"
	if len(entry.CreatedAt) >= 10 {
		dateStr = entry.CreatedAt[:10]
	}
	return fmt.Sprintf("%s %s %s (Wellness: %d/8): %s",
		dateStr, entry.Emoji, Label(entry.Mood), WellnessScore(entry.Mood), entry.Reflection)
}

// Aggregate reduces a non-empty entry sequence into a transcript block and its
// wellness statistics. Entries are separated by a blank line; the average is
// kept at full precision for later display rounding.
func Aggregate(entries []types.MoodEntry) (string, types.WellnessStats) {
	lines := make([]string, 0, len(entries))
	total := 0
	stats := types.WellnessStats{Count: len(entries)}

	for i, entry := range entries {
		score := WellnessScore(entry.Mood)
		total += score
		if i == 0 || score < stats.Min {
			stats.Min = score
		}
		if i == 0 || score > stats.Max {
			stats.Max = score
		}
		lines = append(lines, FormatEntry(entry))
	}

	stats.Average = float64(total) / float64(len(entries))
	return strings.Join(lines, "\n\n"), stats
}
