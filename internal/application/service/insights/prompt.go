package insights

import (
	"fmt"

	"github.com/symptocare/symptocare/internal/types"
)

const summarySystemPrompt = "You are a compassionate mental wellness assistant who provides supportive, " +
	"evidence-based guidance. You focus on emotional wellbeing, self-compassion, " +
	"and practical wellness strategies. Avoid diagnostic language."

const summaryPromptTemplate = `As a compassionate mental wellness assistant, analyze these mood entries and provide supportive insights:

Recent Entries (%d days):
%s

Wellness Statistics:
- Average: %.1f/8
- Range: %d to %d

Please provide:
1. A brief, warm summary of their emotional patterns
2. Positive observations and strengths you notice
3. 2-3 gentle, actionable wellness suggestions
4. Encouraging words for their mental health journey

Keep the response supportive, non-judgmental, and focused on growth. Limit to 250 words.`

// BuildSummaryPrompt renders the user prompt embedding the transcript and the
// precomputed statistics.
func BuildSummaryPrompt(transcript string, stats types.WellnessStats) string {
	return fmt.Sprintf(summaryPromptTemplate, stats.Count, transcript, stats.Average, stats.Min, stats.Max)
}
