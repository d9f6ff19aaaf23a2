package insight

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

func TestSaveInsight(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&types.Insight{}))

	repo := NewInsightRepository(db)
	err = repo.SaveInsight(context.Background(), &types.Insight{
		UserID:      "u1",
		SummaryText: "a calm week overall",
		Type:        "weekly_summary",
	})
	require.NoError(t, err)

	var saved types.Insight
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, "weekly_summary", saved.Type)
	assert.False(t, saved.CreatedAt.IsZero())
}
