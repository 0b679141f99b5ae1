// Package dto defines the request and response shapes for the tasks API.
package dto

import "time"

// CreateTaskReq is the payload for POST /api/tasks.
type CreateTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
}
