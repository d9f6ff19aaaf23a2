package mood

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&enhancedMoodEntry{}, &legacyMoodEntry{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestFetchSincePrefersEnhancedTable(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 6, MoodEmoji: strPtr("😊"), Reflection: strPtr("good walk"),
		CreatedAt: now.Add(-24 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&legacyMoodEntry{
		UserID: "u1", Mood: 2, Emoji: strPtr("😟"), Reflection: strPtr("old row"),
		CreatedAt: now.Add(-24 * time.Hour),
	}).Error)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 6, entries[0].Mood)
	assert.Equal(t, "😊", entries[0].Emoji)
	assert.Equal(t, "good walk", entries[0].Reflection)
}

func TestFetchSinceFallsBackToLegacyTable(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&legacyMoodEntry{
		UserID: "u1", Mood: 3, Emoji: strPtr("😢"), Reflection: strPtr("hard morning"),
		CreatedAt: now.Add(-48 * time.Hour),
	}).Error)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Mood)
	assert.Equal(t, "😢", entries[0].Emoji)
}

func TestFetchSinceBothTablesEmpty(t *testing.T) {
	db := newTestDB(t)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", time.Now().UTC().AddDate(0, 0, -7))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchSinceFiltersByWindowAndUser(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	// Too old.
	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 5, CreatedAt: now.AddDate(0, 0, -10),
	}).Error)
	// Wrong user.
	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u2", Mood: 5, CreatedAt: now.Add(-time.Hour),
	}).Error)
	// In window.
	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 7, CreatedAt: now.Add(-time.Hour),
	}).Error)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Mood)
}

func TestFetchSinceOrdersOldestFirst(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 8, CreatedAt: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 2, CreatedAt: now.Add(-72 * time.Hour),
	}).Error)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Mood)
	assert.Equal(t, 8, entries[1].Mood)
}

func TestFetchSinceNullOptionalColumns(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&enhancedMoodEntry{
		UserID: "u1", Mood: 4, CreatedAt: now.Add(-time.Hour),
	}).Error)

	repo := NewMoodEntryRepository(db)
	entries, err := repo.FetchSince(context.Background(), "u1", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Emoji)
	assert.Equal(t, "", entries[0].Reflection)
	assert.NotEmpty(t, entries[0].CreatedAt)
}
