package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/symptocare/symptocare/internal/logger"
	"github.com/symptocare/symptocare/internal/models/chat"
	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

const (
	// NoEntriesMessage is returned when summarization is asked to run on an
	// empty entry set.
	NoEntriesMessage = "No mood entries available for analysis."

	// NoWeeklyEntriesMessage is returned when neither mood table has rows for
	// the user in the lookback window.
	NoWeeklyEntriesMessage = "No mood entries found for the past week. Start tracking your mood daily to get personalized insights!"

	// lookbackDays is the summary window.
	lookbackDays = 7

	summaryTemperature = 0.7
	summaryMaxTokens   = 350
)

// SummaryService implements the SummaryService interface
type SummaryService struct {
	moodRepo    interfaces.MoodEntryRepository
	insightRepo interfaces.InsightRepository
	chatModel   chat.Chat
	model       string
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	moodRepo interfaces.MoodEntryRepository,
	insightRepo interfaces.InsightRepository,
	chatModel chat.Chat,
	model string,
) interfaces.SummaryService {
	return &SummaryService{
		moodRepo:    moodRepo,
		insightRepo: insightRepo,
		chatModel:   chatModel,
		model:       model,
	}
}

// WeeklySummary fetches the user's last 7 days of mood entries and summarizes
// them. A fetch failure propagates to the caller; the generated summary is
// additionally written to the insights table without blocking the response.
func (s *SummaryService) WeeklySummary(ctx context.Context, userID string) (string, error) {
	since := time.Now().UTC().AddDate(0, 0, -lookbackDays)
	entries, err := s.moodRepo.FetchSince(ctx, userID, since)
	if err != nil {
		return "", fmt.Errorf("failed to fetch mood entries: %w", err)
	}

	if len(entries) == 0 {
		return NoWeeklyEntriesMessage, nil
	}

	summary := s.SummarizeEntries(ctx, entries)

	// Detached best-effort write; its outcome never reaches the response.
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		insight := &types.Insight{
			UserID:      userID,
			SummaryText: summary,
			Type:        "weekly_summary",
		}
		if err := s.insightRepo.SaveInsight(writeCtx, insight); err != nil {
			logger.Warnf(writeCtx, "failed to save insight: %v", err)
		}
	}()

	return summary, nil
}

// SummarizeEntries runs the summarization pipeline on already-normalized
// entries. A generation failure is logged and replaced with the deterministic
// fallback, so the result is always a usable string.
func (s *SummaryService) SummarizeEntries(ctx context.Context, entries []types.MoodEntry) string {
	if len(entries) == 0 {
		return NoEntriesMessage
	}

	transcript, stats := Aggregate(entries)
	prompt := BuildSummaryPrompt(transcript, stats)

	resp, err := s.chatModel.Chat(ctx, []chat.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: prompt},
	}, &chat.ChatOptions{
		Model:       s.model,
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to generate mood summary: %v", err)
		return FallbackSummary(stats)
	}

	return resp.Content
}

// FallbackSummary renders the deterministic substitute used when the model
// cannot produce usable output.
func FallbackSummary(stats types.WellnessStats) string {
	return fmt.Sprintf("I'm having trouble analyzing your mood data right now. "+
		"Your entries show an average wellness level of %.1f/8 over %d days. "+
		"Keep tracking your moods—this data helps build valuable insights over time.",
		stats.Average, stats.Count)
}
