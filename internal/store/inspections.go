// internal/store/inspections.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/M00N69/supainspection/internal/models"
	"gorm.io/gorm"
)

const historyLimit = 50

// InspectionStore persists inspection rows.
type InspectionStore struct {
	db *gorm.DB
}

func NewInspectionStore(db *gorm.DB) *InspectionStore {
	return &InspectionStore{db: db}
}

func (s *InspectionStore) Create(ctx context.Context, insp *models.Inspection) error {
	if err := s.db.WithContext(ctx).Create(insp).Error; err != nil {
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

// Get returns the inspection row, or (nil, nil) when it no longer exists.
func (s *InspectionStore) Get(ctx context.Context, id uint) (*models.Inspection, error) {
	var insp models.Inspection
	err := s.db.WithContext(ctx).First(&insp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get inspection: %w", err)
	}
	return &insp, nil
}

// UpdateResults overwrites results, progress and status in one statement;
// partial-field updates of an inspection do not exist. Zero affected rows is
// an error: the row is gone.
func (s *InspectionStore) UpdateResults(ctx context.Context, id uint, results []models.CheckpointResult, progress float64, status string) error {
	tx := s.db.WithContext(ctx).
		Model(&models.Inspection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"results":  results,
			"progress": progress,
			"status":   status,
		})
	if tx.Error != nil {
		return fmt.Errorf("update inspection: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("update inspection: no row affected")
	}
	return nil
}

// ListByUser returns the user's inspections, newest first.
func (s *InspectionStore) ListByUser(ctx context.Context, userID uint) ([]models.Inspection, error) {
	var inspections []models.Inspection
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&inspections).Error
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	return inspections, nil
}
