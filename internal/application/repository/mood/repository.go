package mood

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/symptocare/symptocare/internal/logger"
	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

// enhancedMoodEntry is a row of the newer schema. Its emoji column is named
// mood_emoji.
type enhancedMoodEntry struct {
	UserID     string    `gorm:"column:user_id"`
	Mood       int       `gorm:"column:mood"`
	MoodEmoji  *string   `gorm:"column:mood_emoji"`
	Reflection *string   `gorm:"column:reflection"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (enhancedMoodEntry) TableName() string {
	return "enhanced_mood_entries"
}

// legacyMoodEntry is a row of the original schema.
type legacyMoodEntry struct {
	UserID     string    `gorm:"column:user_id"`
	Mood       int       `gorm:"column:mood"`
	Emoji      *string   `gorm:"column:emoji"`
	Reflection *string   `gorm:"column:reflection"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (legacyMoodEntry) TableName() string {
	return "mood_entries"
}

type moodEntryRepository struct {
	db *gorm.DB
}

// NewMoodEntryRepository creates a mood entry repository backed by the given
// database handle.
func NewMoodEntryRepository(db *gorm.DB) interfaces.MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

// FetchSince queries the enhanced table first and falls back to the legacy
// table only when the enhanced one yields no rows. Rows come back normalized,
// oldest first.
func (r *moodEntryRepository) FetchSince(ctx context.Context, userID string, since time.Time) ([]types.MoodEntry, error) {
	var enhanced []enhancedMoodEntry
	err := r.db.WithContext(ctx).
		Select("mood", "mood_emoji", "reflection", "created_at").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at asc").
		Find(&enhanced).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query enhanced mood entries: %w", err)
	}

	if len(enhanced) > 0 {
		entries := make([]types.MoodEntry, 0, len(enhanced))
		for _, row := range enhanced {
			entries = append(entries, types.MoodEntry{
				Mood:       row.Mood,
				Emoji:      deref(row.MoodEmoji),
				Reflection: deref(row.Reflection),
				CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return entries, nil
	}

	logger.Debugf(ctx, "no enhanced mood entries for user %s, falling back to legacy table", userID)

	var legacy []legacyMoodEntry
	err = r.db.WithContext(ctx).
		Select("mood", "emoji", "reflection", "created_at").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at asc").
		Find(&legacy).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy mood entries: %w", err)
	}

	entries := make([]types.MoodEntry, 0, len(legacy))
	for _, row := range legacy {
		entries = append(entries, types.MoodEntry{
			Mood:       row.Mood,
			Emoji:      deref(row.Emoji),
			Reflection: deref(row.Reflection),
			CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return entries, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
