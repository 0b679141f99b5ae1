// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/feature/tasks/domain/entity"
	"taskmaster/internal/feature/tasks/transport/http/dto"
	"taskmaster/internal/feature/tasks/usecase"
	"taskmaster/internal/platform/http/middleware"
	jwtmw "taskmaster/internal/platform/jwt"
	"taskmaster/pkg/apierrors"
)

// TaskUsecase defines the task operations consumed by this handler. Every
// operation is scoped to the authenticated caller.
type TaskUsecase interface {
	Create(ctx context.Context, ownerID uint, in usecase.CreateTaskInput) (*entity.Task, error)
	List(ctx context.Context, ownerID uint, filter usecase.Filter) ([]entity.Task, error)
	ListOverdue(ctx context.Context, ownerID uint) ([]entity.Task, error)
	GetByID(ctx context.Context, callerID, taskID uint) (*entity.Task, error)
	Update(ctx context.Context, callerID, taskID uint, in usecase.UpdateTaskInput) (*entity.Task, error)
	UpdateStatus(ctx context.Context, callerID, taskID uint, status entity.TaskStatus) (*entity.Task, error)
	Delete(ctx context.Context, callerID, taskID uint) error
}

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler with the injected usecase.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /api/tasks.
// Returns 201 with the created task, 400 on malformed input.
func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang))
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create task validation failed", "error", err, "user_id", caller.UserID)
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), caller.UserID, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailCreateTask, "create task failed")
		return
	}

	slog.Info("task created", "task_id", task.ID, "user_id", caller.UserID)
	c.JSON(http.StatusCreated, dto.FromTask(task))
}

// List handles GET /api/tasks.
// Optional status and priority query parameters narrow the listing.
func (h *TaskHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang))
		return
	}

	var filter usecase.Filter
	if raw := c.Query("status"); raw != "" {
		status := entity.TaskStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := entity.TaskPriority(raw)
		filter.Priority = &priority
	}

	tasks, err := h.tasks.List(c.Request.Context(), caller.UserID, filter)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailListTasks, "list tasks failed")
		return
	}

	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

// ListOverdue handles GET /api/tasks/overdue.
func (h *TaskHandler) ListOverdue(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang))
		return
	}

	tasks, err := h.tasks.ListOverdue(c.Request.Context(), caller.UserID)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailListTasks, "list overdue tasks failed")
		return
	}

	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

// GetByID handles GET /api/tasks/:id.
// Returns 404 both when the task does not exist and when it belongs to
// another user.
func (h *TaskHandler) GetByID(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, taskID, ok := h.callerAndTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), caller.UserID, taskID)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailListTasks, "get task failed")
		return
	}

	c.JSON(http.StatusOK, dto.FromTask(task))
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, taskID, ok := h.callerAndTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update task validation failed", "error", err, "task_id", taskID, "user_id", caller.UserID)
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), caller.UserID, taskID, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailUpdateTask, "update task failed")
		return
	}

	slog.Info("task updated", "task_id", task.ID, "user_id", caller.UserID)
	c.JSON(http.StatusOK, dto.FromTask(task))
}

// UpdateStatus handles PATCH /api/tasks/:id/status?status=COMPLETED.
// Setting the status a task already has succeeds without modifying it.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, taskID, ok := h.callerAndTaskID(c, lang)
	if !ok {
		return
	}

	status := entity.TaskStatus(c.Query("status"))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskStatus, lang))
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), caller.UserID, taskID, status)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailUpdateTask, "update task status failed")
		return
	}

	slog.Info("task status updated", "task_id", task.ID, "status", task.Status, "user_id", caller.UserID)
	c.JSON(http.StatusOK, dto.FromTask(task))
}

// Delete handles DELETE /api/tasks/:id.
// Returns 204 on success.
func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, taskID, ok := h.callerAndTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), caller.UserID, taskID); err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailDeleteTask, "delete task failed")
		return
	}

	slog.Info("task deleted", "task_id", taskID, "user_id", caller.UserID)
	c.Status(http.StatusNoContent)
}

// callerAndTaskID resolves the authenticated caller and the :id parameter,
// writing the error response itself when either is missing.
func (h *TaskHandler) callerAndTaskID(c *gin.Context, lang string) (jwtmw.Identity, uint, bool) {
	caller, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang))
		return jwtmw.Identity{}, 0, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang))
		return jwtmw.Identity{}, 0, false
	}

	return caller, uint(id), true
}

// writeTaskError maps usecase errors onto the API error envelope.
func (h *TaskHandler) writeTaskError(c *gin.Context, lang string, err error, failMsg, logMsg string) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		slog.Warn(logMsg, "error", err, "path", c.FullPath())
		c.JSON(http.StatusBadRequest,
			apierrors.JsonErr{ErrDetails: apierrors.Err{Code: http.StatusBadRequest, Message: ve.Message}})
	case errors.Is(err, usecase.ErrTaskNotFound):
		slog.Warn(logMsg, "error", err, "path", c.FullPath())
		c.JSON(http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	default:
		slog.Error(logMsg, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsg, lang))
	}
}
