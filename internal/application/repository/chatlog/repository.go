package chatlog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

type chatLogRepository struct {
	db *gorm.DB
}

// NewChatLogRepository creates a chat log repository backed by the given
// database handle.
func NewChatLogRepository(db *gorm.DB) interfaces.ChatLogRepository {
	return &chatLogRepository{db: db}
}

// SaveMessage stores one side of a chat exchange.
func (r *chatLogRepository) SaveMessage(ctx context.Context, message *types.ChatMessage) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}
