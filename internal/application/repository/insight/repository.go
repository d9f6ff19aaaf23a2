package insight

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates an insight repository backed by the given
// database handle.
func NewInsightRepository(db *gorm.DB) interfaces.InsightRepository {
	return &insightRepository{db: db}
}

// SaveInsight stores a generated summary.
func (r *insightRepository) SaveInsight(ctx context.Context, ins *types.Insight) error {
	if ins.CreatedAt.IsZero() {
		ins.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(ins).Error; err != nil {
		return fmt.Errorf("failed to save insight: %w", err)
	}
	return nil
}
