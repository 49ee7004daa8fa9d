package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
	"github.com/taskflowhq/taskflow-api/internal/usecase"
)

type taskUsecaser interface {
	Create(ctx context.Context, input usecase.CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, taskID, userID string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, taskID, userID string) error
}

type TaskHandler struct {
	taskUsecase taskUsecaser
	logger      *slog.Logger
}

func NewTaskHandler(taskUsecase taskUsecaser, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title             string          `json:"title"`
	Description       *string         `json:"description"`
	Priority          domain.Priority `json:"priority"          binding:"omitempty,oneof=High Medium Low"`
	ScheduledTime     *string         `json:"scheduledTime"`
	Category          string          `json:"category"`
	EstimatedDuration int             `json:"estimatedDuration" binding:"omitempty,min=1"`
}

type updateTaskRequest struct {
	Title             *string          `json:"title"`
	Description       *string          `json:"description"`
	Priority          *domain.Priority `json:"priority"          binding:"omitempty,oneof=High Medium Low"`
	Status            *domain.Status   `json:"status"            binding:"omitempty,oneof=Todo 'In Progress' Done"`
	ScheduledTime     *string          `json:"scheduledTime"`
	Category          *string          `json:"category"`
	EstimatedDuration *int             `json:"estimatedDuration" binding:"omitempty,min=1"`
}

type taskResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       *string         `json:"description,omitempty"`
	Priority          domain.Priority `json:"priority"`
	Status            domain.Status   `json:"status"`
	EstimatedDuration int             `json:"estimatedDuration"`
	ScheduledTime     *string         `json:"scheduledTime,omitempty"`
	Category          string          `json:"category"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority,
		Status:            t.Status,
		EstimatedDuration: t.EstimatedDuration,
		ScheduledTime:     t.ScheduledTime,
		Category:          t.Category,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskUsecase.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.logger.Error("list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": out})
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errTitleRequired})
		return
	}

	// Owner comes from the verified token, never from the body.
	task, err := h.taskUsecase.Create(c.Request.Context(), usecase.CreateTaskInput{
		UserID:            c.GetString("userID"),
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		ScheduledTime:     req.ScheduledTime,
		Category:          req.Category,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errTitleRequired})
			return
		}
		h.logger.Error("create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	metrics.TasksCreatedTotal.Inc()
	h.logger.InfoContext(c.Request.Context(), "task created", "task_id", task.ID)
	c.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(task)})
}

// PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errMissingFields})
		return
	}

	task, err := h.taskUsecase.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), domain.TaskPatch{
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		Status:            req.Status,
		EstimatedDuration: req.EstimatedDuration,
		ScheduledTime:     req.ScheduledTime,
		Category:          req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errTaskNotFound})
			return
		}
		h.logger.Error("update task", "task_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.taskUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errTaskNotFound})
			return
		}
		h.logger.Error("delete task", "task_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
