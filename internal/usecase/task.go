package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/repository"
)

type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

type CreateTaskInput struct {
	UserID            string
	Title             string
	Description       *string
	Priority          domain.Priority
	ScheduledTime     *string
	Category          string
	EstimatedDuration int
}

// Create applies defaults and forces the owner to the authenticated user,
// ignoring any owner the client may have sent.
func (u *TaskUsecase) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingFields
	}

	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if input.Category == "" {
		input.Category = domain.DefaultCategory
	}
	if input.EstimatedDuration == 0 {
		input.EstimatedDuration = domain.DefaultEstimatedDuration
	}

	task := &domain.Task{
		UserID:            input.UserID,
		Title:             input.Title,
		Description:       input.Description,
		Priority:          input.Priority,
		Status:            domain.StatusTodo,
		EstimatedDuration: input.EstimatedDuration,
		ScheduledTime:     input.ScheduledTime,
		Category:          input.Category,
	}

	created, err := u.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (u *TaskUsecase) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) Update(ctx context.Context, taskID, userID string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := u.repo.Update(ctx, taskID, userID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (u *TaskUsecase) Delete(ctx context.Context, taskID, userID string) error {
	if err := u.repo.Delete(ctx, taskID, userID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
