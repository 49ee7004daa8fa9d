package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound covers both "no such task" and "task owned by someone
// else". The two cases are never distinguished so that probing ids cannot
// reveal whether a task exists.
var ErrTaskNotFound = errors.New("task not found")

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

const (
	DefaultCategory          = "Inbox"
	DefaultEstimatedDuration = 30 // minutes
)

type Task struct {
	ID          string
	UserID      string // owner, immutable after creation
	Title       string
	Description *string
	Priority    Priority
	Status      Status

	EstimatedDuration int     // minutes
	ScheduledTime     *string // date string as sent by the client
	Category          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch carries a partial update. nil means "leave unchanged".
type TaskPatch struct {
	Title             *string
	Description       *string
	Priority          *Priority
	Status            *Status
	EstimatedDuration *int
	ScheduledTime     *string
	Category          *string
}

// Empty reports whether the patch changes nothing. updated_at is still
// refreshed for an empty patch, matching an unconditional find-and-modify.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.EstimatedDuration == nil &&
		p.ScheduledTime == nil && p.Category == nil
}
