package types

import (
	"encoding/json"
	"strconv"
	"time"
)

// NeutralMood is substituted when a stored mood value cannot be read as a number.
const NeutralMood = 5

// MoodEntry is the canonical mood record regardless of which storage schema it
// came from. CreatedAt is an ISO-8601 string, or empty when the source row had
// no timestamp.
type MoodEntry struct {
	Mood       int    `json:"mood"`
	Emoji      string `json:"emoji"`
	Reflection string `json:"reflection"`
	CreatedAt  string `json:"created_at"`
}

// RawMoodEntry accepts both storage spellings of a mood row: the enhanced
// schema carries the emoji as mood_emoji, the legacy schema as emoji. Mood is
// left untyped so that non-numeric values coming off the wire degrade to the
// neutral default instead of failing the whole request.
type RawMoodEntry struct {
	Mood       json.RawMessage `json:"mood"`
	Emoji      string          `json:"emoji"`
	MoodEmoji  string          `json:"mood_emoji"`
	Reflection string          `json:"reflection"`
	CreatedAt  string          `json:"created_at"`
}

// Normalize merges the two schema spellings into the canonical form. The
// enhanced field wins when both are present. Normalizing an already-normalized
// entry is a no-op.
func (r RawMoodEntry) Normalize() MoodEntry {
	emoji := r.MoodEmoji
	if emoji == "" {
		emoji = r.Emoji
	}
	return MoodEntry{
		Mood:       CoerceMood(r.Mood),
		Emoji:      emoji,
		Reflection: r.Reflection,
		CreatedAt:  r.CreatedAt,
	}
}

// NormalizeEntries normalizes a batch of raw rows, preserving order.
func NormalizeEntries(raw []RawMoodEntry) []MoodEntry {
	entries := make([]MoodEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, r.Normalize())
	}
	return entries
}

// CoerceMood reads a raw JSON mood value as an integer. Numbers are truncated,
// numeric strings are parsed, anything else yields NeutralMood.
func CoerceMood(raw json.RawMessage) int {
	// Unmarshal treats null as a no-op success, so reject it up front.
	if len(raw) == 0 || string(raw) == "null" {
		return NeutralMood
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return NeutralMood
}

// WellnessStats summarizes the wellness scores of a non-empty entry set.
type WellnessStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

// Insight is a generated summary persisted best-effort to the insights table.
type Insight struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"column:user_id"`
	SummaryText string    `json:"summary_text" gorm:"column:summary_text"`
	Type        string    `json:"type" gorm:"column:type"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName returns the table name for the Insight model
func (Insight) TableName() string {
	return "ai_insights"
}

// ChatMessage is one side of a chat exchange persisted best-effort to the
// chat log table. UserID is nil when the caller presented no usable token.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *string   `json:"user_id" gorm:"column:user_id"`
	ThreadID  string    `json:"thread_id" gorm:"column:thread_id"`
	Role      string    `json:"role" gorm:"column:role"`
	Content   string    `json:"content" gorm:"column:content"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName returns the table name for the ChatMessage model
func (ChatMessage) TableName() string {
	return "chat_messages"
}
