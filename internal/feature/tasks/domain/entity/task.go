// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "PENDING"
	StatusCompleted TaskStatus = "COMPLETED"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// TaskPriority is the urgency class of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Valid reports whether p is a known priority.
func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is a unit of work owned by exactly one user. Ownership is fixed at
// creation and never transfers.
type Task struct {
	ID          uint         `gorm:"primaryKey"`
	Title       string       `gorm:"size:200;not null"`
	Description string       `gorm:"size:2000"`
	Status      TaskStatus   `gorm:"size:20;not null;index"`
	Priority    TaskPriority `gorm:"size:20;not null;index"`
	DueDate     *time.Time
	// CompletedAt is non-nil exactly when Status is StatusCompleted.
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerID     uint `gorm:"not null;index"`
}

// Complete marks the task as done and records when.
func (t *Task) Complete() {
	now := time.Now()
	t.Status = StatusCompleted
	t.CompletedAt = &now
}

// MarkPending reopens the task and clears the completion timestamp.
func (t *Task) MarkPending() {
	t.Status = StatusPending
	t.CompletedAt = nil
}

// IsOverdue reports whether the task is still pending past its due date.
func (t *Task) IsOverdue() bool {
	return t.Status == StatusPending && t.DueDate != nil && time.Now().After(*t.DueDate)
}
