package chatlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/symptocare/symptocare/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&types.ChatMessage{}))
	return db
}

func TestSaveMessage(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepository(db)

	userID := "u1"
	err := repo.SaveMessage(context.Background(), &types.ChatMessage{
		UserID:   &userID,
		ThreadID: "t1",
		Role:     "assistant",
		Content:  "hello there",
	})
	require.NoError(t, err)

	var saved types.ChatMessage
	require.NoError(t, db.First(&saved).Error)
	require.NotNil(t, saved.UserID)
	assert.Equal(t, "u1", *saved.UserID)
	assert.Equal(t, "t1", saved.ThreadID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSaveMessageNilUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepository(db)

	err := repo.SaveMessage(context.Background(), &types.ChatMessage{
		ThreadID: "default",
		Role:     "assistant",
		Content:  "anonymous exchange",
	})
	require.NoError(t, err)

	var saved types.ChatMessage
	require.NoError(t, db.First(&saved).Error)
	assert.Nil(t, saved.UserID)
}
