// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	authentity "task_backend/internal/feature/auth/domain/entity"
)

// Task represents a unit of work created by one user and optionally
// assigned to another.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Title is the short description of the task. Required.
	Title string `gorm:"size:255;not null"`

	// Description is optional free text.
	Description string `gorm:"type:text"`

	// IsCompleted reports whether the task is done. Defaults to false.
	IsCompleted bool `gorm:"not null;default:false"`

	// DueDate is the optional deadline for the task.
	DueDate *time.Time

	// AssignedTo references the user the task is assigned to.
	// Cleared automatically when that user is deleted.
	AssignedTo *uint `gorm:"index"`

	// CreatedBy references the user who created the task. Immutable after
	// creation; the task is deleted together with its creator.
	CreatedBy uint `gorm:"not null;index"`

	// Assignee is the optional assigned user, populated on reads.
	Assignee *authentity.User `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Creator is the user who created the task, populated on reads.
	Creator authentity.User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}
