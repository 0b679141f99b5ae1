package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskmaster/internal/feature/tasks/domain/entity"
)

const (
	minTitleLength       = 3
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// Filter narrows an owner-scoped task listing. Nil fields match everything.
type Filter struct {
	Status   *entity.TaskStatus
	Priority *entity.TaskPriority
}

// TaskRepository abstracts the persistence layer for task entities. The
// interface lives with its consumer, not the adapters that implement it.
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by id regardless of owner, or ErrTaskNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// FindByOwner retrieves the owner's tasks matching the filter. Scoping
	// happens in the query, not by post-filtering someone else's rows.
	FindByOwner(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error)

	// FindOverdueByOwner retrieves the owner's pending tasks past their due
	// date as of now.
	FindOverdueByOwner(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error)

	// Update persists the task's current field values.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given id.
	Delete(ctx context.Context, id uint) error
}

// CreateTaskInput carries the caller-supplied fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    entity.TaskPriority
	DueDate     *time.Time
}

// UpdateTaskInput carries the caller-supplied fields for a full update.
type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    entity.TaskPriority
	DueDate     *time.Time
}

// taskUsecase implements task CRUD with per-operation ownership checks.
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase wires the task business logic to its repository.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// Create stores a new pending task owned by ownerID.
func (u *taskUsecase) Create(ctx context.Context, ownerID uint, in CreateTaskInput) (*entity.Task, error) {
	if err := validateTaskInput(in.Title, in.Description, in.Priority, in.DueDate); err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      entity.StatusPending,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		OwnerID:     ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns the owner's tasks, optionally narrowed by status/priority.
func (u *taskUsecase) List(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, validationErr("invalid task status")
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, validationErr("invalid task priority")
	}
	return u.tasks.FindByOwner(ctx, ownerID, filter)
}

// ListOverdue returns the owner's pending tasks past their due date.
func (u *taskUsecase) ListOverdue(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	return u.tasks.FindOverdueByOwner(ctx, ownerID, time.Now())
}

// GetByID returns one of the caller's tasks. The lookup walks the caller's
// own list, so a foreign task id is indistinguishable from a missing one.
func (u *taskUsecase) GetByID(ctx context.Context, callerID, taskID uint) (*entity.Task, error) {
	owned, err := u.tasks.FindByOwner(ctx, callerID, Filter{})
	if err != nil {
		return nil, err
	}
	for i := range owned {
		if owned[i].ID == taskID {
			return &owned[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// Update replaces the mutable fields of one of the caller's tasks.
func (u *taskUsecase) Update(ctx context.Context, callerID, taskID uint, in UpdateTaskInput) (*entity.Task, error) {
	task, err := u.loadOwned(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	if err := validateTaskInput(in.Title, in.Description, in.Priority, in.DueDate); err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(in.Title)
	task.Description = in.Description
	task.Priority = in.Priority
	task.DueDate = in.DueDate

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateStatus moves one of the caller's tasks between PENDING and
// COMPLETED. Setting the status it already has is a no-op: nothing is
// written and no timestamp moves.
func (u *taskUsecase) UpdateStatus(ctx context.Context, callerID, taskID uint, status entity.TaskStatus) (*entity.Task, error) {
	if !status.Valid() {
		return nil, validationErr("invalid task status")
	}

	task, err := u.loadOwned(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == status {
		return task, nil
	}

	if status == entity.StatusCompleted {
		task.Complete()
	} else {
		task.MarkPending()
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return task, nil
}

// Delete removes one of the caller's tasks.
func (u *taskUsecase) Delete(ctx context.Context, callerID, taskID uint) error {
	task, err := u.loadOwned(ctx, callerID, taskID)
	if err != nil {
		return err
	}
	if err := u.tasks.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// loadOwned fetches the task and gates it on ownership. The check runs on
// every call; it is never cached across requests.
func (u *taskUsecase) loadOwned(ctx context.Context, callerID, taskID uint) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership(callerID, task); err != nil {
		return nil, err
	}
	return task, nil
}

// requireOwnership allows the operation iff the caller owns the task. A
// mismatch reports ErrTaskNotFound, same as a missing task.
func requireOwnership(callerID uint, task *entity.Task) error {
	if task.OwnerID != callerID {
		return ErrTaskNotFound
	}
	return nil
}

func validateTaskInput(title, description string, priority entity.TaskPriority, dueDate *time.Time) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return validationErr("title cannot be empty")
	}
	if len(trimmed) < minTitleLength || len(trimmed) > maxTitleLength {
		return validationErr(fmt.Sprintf("title must be between %d and %d characters", minTitleLength, maxTitleLength))
	}
	if len(description) > maxDescriptionLength {
		return validationErr(fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength))
	}
	if !priority.Valid() {
		return validationErr("invalid task priority")
	}
	if dueDate != nil && dueDate.Before(time.Now()) {
		return validationErr("due date cannot be in the past")
	}
	return nil
}
