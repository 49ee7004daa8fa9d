package repository

import (
	"context"

	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// TaskRepository scopes every lookup that targets a single task by BOTH the
// task id and the owner. Implementations must keep that constraint inside
// the query itself (find-and-modify style), not as a post-fetch check, so
// "not found" and "not yours" stay indistinguishable.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// ListByUser returns the user's tasks newest-first. No tasks is an
	// empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	// Update applies the patch to the task owned by userID and refreshes
	// updated_at. Returns domain.ErrTaskNotFound when no row matches.
	Update(ctx context.Context, taskID, userID string, patch domain.TaskPatch) (*domain.Task, error)
	// Delete removes the task owned by userID. Returns
	// domain.ErrTaskNotFound when no row matches.
	Delete(ctx context.Context, taskID, userID string) error
}
