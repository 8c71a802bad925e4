// internal/store/users.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/M00N69/supainspection/internal/models"
	"gorm.io/gorm"
)

// UserStore reads the external user directory table.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail matches the email case-insensitively. A missing user is
// (nil, nil).
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
