package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/symptocare/symptocare/internal/types"
)

// maxContextMoods caps how many recent check-ins are surfaced to the model.
const maxContextMoods = 5

// maxReflectionChars truncates long reflections inside the context block.
const maxReflectionChars = 120

// summarizeMoodContext turns recent mood entries into a compact block of
// context lines for the model. Returns "" when there is nothing to surface.
func summarizeMoodContext(chatCtx *types.ChatContext) string {
	if chatCtx == nil || len(chatCtx.RecentMoods) == 0 {
		return ""
	}

	moods := chatCtx.RecentMoods
	if len(moods) > maxContextMoods {
		moods = moods[:maxContextMoods]
	}

	lines := make([]string, 0, len(moods))
	for _, m := range moods {
		when := "recent"
		if m.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, m.CreatedAt); err == nil {
				when = ts.Format("Jan 02, 15:04")
			}
		}

		emoji := m.MoodEmoji
		if emoji == "" {
			emoji = m.Emoji
		}

		parts := []string{fmt.Sprintf("%s: mood %d", when, types.CoerceMood(m.Mood))}
		if emoji != "" {
			parts[0] += " " + emoji
		}
		if m.SleepHours != nil {
			parts = append(parts, fmt.Sprintf("sleep %gh", *m.SleepHours))
		}
		if m.EnergyLevel != nil {
			parts = append(parts, fmt.Sprintf("energy %d/5", *m.EnergyLevel))
		}
		if m.SocialInteraction != nil {
			parts = append(parts, fmt.Sprintf("social %d/5", *m.SocialInteraction))
		}
		if m.MedicationTaken != nil {
			if *m.MedicationTaken {
				parts = append(parts, "meds taken")
			} else {
				parts = append(parts, "meds missed")
			}
		}
		if refl := strings.TrimSpace(strings.ReplaceAll(m.Reflection, "\n", " ")); refl != "" {
			if runes := []rune(refl); len(runes) > maxReflectionChars {
				refl = string(runes[:maxReflectionChars]) + "…"
			}
			parts = append(parts, fmt.Sprintf("%q", refl))
		}

		lines = append(lines, strings.Join(parts, " · "))
	}

	return "Recent check-ins:\n" + strings.Join(lines, "\n")
}
