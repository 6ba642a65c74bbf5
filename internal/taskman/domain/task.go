package domain

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is how urgent a task is. Sorting by priority ranks
// low < medium < high.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string
	UserID      string // Foreign key to users table
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time // nullable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskFilter narrows and orders a listing. Zero values mean "no constraint".
type TaskFilter struct {
	Status   Status   // exact match when set
	Priority Priority // exact match when set
	Search   string   // case-insensitive substring over title and description
	SortBy   string   // createdAt | updatedAt | dueDate | title | status | priority
	Order    string   // asc | desc
}

// TaskStats is the per-status breakdown for a single user.
type TaskStats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}
