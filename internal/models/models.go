// internal/models/models.go
package models

import (
	"time"
)

// Checkpoint evaluation statuses.
const (
	StatusUnevaluated  = "unevaluated"
	StatusCompliant    = "compliant"
	StatusNonCompliant = "non_compliant"
)

// Inspection lifecycle statuses.
const (
	InspectionInProgress = "in_progress"
	InspectionCompleted  = "completed"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash; empty for directory-only rows
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Checkpoint is one inspectable item of a checklist. Name is the checklist
// name; all rows sharing a Name form one checklist.
type Checkpoint struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Name   string `gorm:"index;not null" json:"name"`
	Zone   string `gorm:"not null" json:"zone"`
	Points string `gorm:"not null" json:"points"`
}

// CheckpointResult is the recorded evaluation of one checkpoint. Zone and
// Points are copied from the catalog when the inspection starts, so later
// catalog edits do not reach in-progress inspections.
type CheckpointResult struct {
	CheckpointID uint     `json:"checkpoint_id"`
	Zone         string   `json:"zone"`
	Points       string   `json:"points"`
	Status       string   `json:"status"`
	Comment      string   `json:"comment"`
	Photos       []string `json:"photos"`
}

type Inspection struct {
	ID        uint               `gorm:"primarykey" json:"id"`
	UserID    uint               `gorm:"not null;index" json:"user_id"`
	Status    string             `gorm:"default:'in_progress'" json:"status"`
	Progress  float64            `json:"progress"`
	Results   []CheckpointResult `gorm:"serializer:json" json:"results"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
