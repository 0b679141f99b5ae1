// Package adapters provides the repository implementations for the tasks
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskmaster/internal/feature/tasks/domain/entity"
	"taskmaster/internal/feature/tasks/usecase"
)

// taskPostgres implements the TaskRepository interface on gorm.
type taskPostgres struct {
	db *gorm.DB
}

var _ usecase.TaskRepository = (*taskPostgres)(nil)

// NewTaskPostgres creates a task repository on the given gorm connection.
func NewTaskPostgres(db *gorm.DB) *taskPostgres {
	return &taskPostgres{db: db}
}

// Create inserts the task.
func (r *taskPostgres) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByID fetches the task with the given id, owner included.
func (r *taskPostgres) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByOwner fetches the owner's tasks, newest first, narrowed by the
// filter's non-nil fields.
func (r *taskPostgres) FindByOwner(ctx context.Context, ownerID uint, filter usecase.Filter) ([]entity.Task, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}

	var tasks []entity.Task
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOverdueByOwner fetches the owner's pending tasks whose due date has
// passed, most overdue first.
func (r *taskPostgres) FindOverdueByOwner(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ? AND due_date IS NOT NULL AND due_date < ?",
			ownerID, entity.StatusPending, now).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task's current field values.
func (r *taskPostgres) Update(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes the task with the given id.
func (r *taskPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, id).Error
}
