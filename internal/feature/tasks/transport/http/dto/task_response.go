package dto

import (
	"math"
	"time"

	"taskmaster/internal/feature/tasks/domain/entity"
)

// TaskResponse is the representation of a task returned by every task
// endpoint. IsOverdue and DaysUntilDue are derived at response time.
type TaskResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	OwnerID      uint       `json:"userId"`
	IsOverdue    bool       `json:"isOverdue"`
	DaysUntilDue *int64     `json:"daysUntilDue"`
}

// FromTask converts a task entity into its API representation.
func FromTask(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		OwnerID:      t.OwnerID,
		IsOverdue:    t.IsOverdue(),
		DaysUntilDue: daysUntilDue(t.DueDate),
	}
}

// FromTasks converts a slice of task entities. It returns an empty, non-nil
// slice for zero tasks so the JSON is [] rather than null.
func FromTasks(tasks []entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, FromTask(&tasks[i]))
	}
	return out
}

// daysUntilDue reports whole days from now to the due date, negative when
// the date has passed, nil when no due date is set.
func daysUntilDue(due *time.Time) *int64 {
	if due == nil {
		return nil
	}
	days := int64(math.Floor(time.Until(*due).Hours() / 24))
	return &days
}
