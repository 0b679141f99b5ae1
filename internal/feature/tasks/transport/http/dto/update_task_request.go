package dto

import "time"

// UpdateTaskReq is the payload for PUT /api/tasks/:id. It replaces the
// task's mutable fields wholesale; omitted optional fields are cleared.
type UpdateTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
}
