// internal/store/checkpoints.go
package store

import (
	"context"
	"fmt"

	"github.com/M00N69/supainspection/internal/models"
	"gorm.io/gorm"
)

// CheckpointStore reads the checkpoint catalog table.
type CheckpointStore struct {
	db *gorm.DB
}

func NewCheckpointStore(db *gorm.DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

// FindByChecklist returns the checkpoints of the named checklist,
// case-insensitively, in catalog order.
func (s *CheckpointStore) FindByChecklist(ctx context.Context, name string) ([]models.Checkpoint, error) {
	var checkpoints []models.Checkpoint
	err := s.db.WithContext(ctx).
		Where("upper(name) = upper(?)", name).
		Order("id").
		Find(&checkpoints).Error
	if err != nil {
		return nil, fmt.Errorf("find checkpoints: %w", err)
	}
	return checkpoints, nil
}

// Checklists returns the distinct checklist names in the catalog.
func (s *CheckpointStore) Checklists(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Checkpoint{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	return names, nil
}
