package types

import "encoding/json"

// ChatRequest is the body of a chat turn. Context is optional side information
// the frontend already holds, surfaced to the model as extra system context.
type ChatRequest struct {
	Question string       `json:"question" binding:"required"`
	ThreadID string       `json:"thread_id"`
	Context  *ChatContext `json:"context"`
}

// ChatContext carries the caller's recent check-ins. Entries may come from
// either mood schema and may include the enhanced tracking fields.
type ChatContext struct {
	RecentMoods []RecentMood `json:"recent_moods"`
}

// RecentMood is one recent check-in used as chat side-context. The optional
// enhanced fields are pointers so absent and zero are distinguishable.
type RecentMood struct {
	Mood              json.RawMessage `json:"mood"`
	Emoji             string          `json:"emoji"`
	MoodEmoji         string          `json:"mood_emoji"`
	Reflection        string          `json:"reflection"`
	CreatedAt         string          `json:"created_at"`
	SleepHours        *float64        `json:"sleep_hours"`
	EnergyLevel       *int            `json:"energy_level"`
	SocialInteraction *int            `json:"social_interaction"`
	MedicationTaken   *bool           `json:"medication_taken"`
}

// ChatResponse is the body returned by the chat endpoint.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// SummaryRequest is the body of a caller-supplied summarization request.
type SummaryRequest struct {
	Entries []RawMoodEntry `json:"entries"`
}

// SummaryResponse is the body returned by the summary endpoints.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
