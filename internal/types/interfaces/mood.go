package interfaces

import (
	"context"
	"time"

	"github.com/symptocare/symptocare/internal/types"
)

// MoodEntryRepository reads stored mood entries.
type MoodEntryRepository interface {
	// FetchSince returns the user's normalized entries created at or after
	// since, oldest first. The enhanced schema is preferred; the legacy table
	// is queried only when the enhanced one yields no rows.
	FetchSince(ctx context.Context, userID string, since time.Time) ([]types.MoodEntry, error)
}

// InsightRepository persists generated insights.
type InsightRepository interface {
	// SaveInsight stores a generated summary for later retrieval
	SaveInsight(ctx context.Context, insight *types.Insight) error
}

// ChatLogRepository persists chat exchanges.
type ChatLogRepository interface {
	// SaveMessage stores one side of a chat exchange
	SaveMessage(ctx context.Context, message *types.ChatMessage) error
}

// SummaryService generates weekly mood summaries.
type SummaryService interface {
	// WeeklySummary fetches the user's last 7 days of entries and summarizes
	// them. A fetch failure propagates; a generation failure does not.
	WeeklySummary(ctx context.Context, userID string) (string, error)

	// SummarizeEntries runs the summarization pipeline on caller-supplied
	// entries. Always returns a usable string.
	SummarizeEntries(ctx context.Context, entries []types.MoodEntry) string
}

// ChatService answers free-form wellness questions.
type ChatService interface {
	// Reply generates an assistant reply for the question, surfacing any
	// recent-mood context to the model. Always returns a usable string.
	Reply(ctx context.Context, req *types.ChatRequest) string

	// LogExchange records the assistant reply without blocking the caller.
	// Failures are logged and swallowed; userID may be empty.
	LogExchange(ctx context.Context, userID, threadID, reply string)
}
