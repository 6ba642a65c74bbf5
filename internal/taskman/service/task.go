package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/pkg/idx"
	"github.com/Banup3/TaskManager/pkg/slogx"
)

// ErrTaskNotFound covers both a missing task and a task owned by another
// user, so callers cannot probe for other users' task ids.
var ErrTaskNotFound = errors.New("task_not_found")

// ErrInvalidTask rejects a status or priority outside the known enums. HTTP
// callers never hit this since request validation runs first; it guards
// direct callers of the service.
var ErrInvalidTask = errors.New("invalid_task_field")

type TaskService struct {
	Store store.Store
}

// TaskDraft carries the fields for a new task. Empty Status/Priority fall
// back to pending/medium.
type TaskDraft struct {
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     *time.Time
}

// TaskPatch carries a partial update. Nil fields keep their stored value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *time.Time
	ClearDue    bool // set DueDate to NULL; wins over DueDate
}

// List returns the user's tasks matching the filter.
func (s *TaskService) List(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx, userID, filter)
}

// Get fetches a single task, masking ownership mismatches as not found.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if task.UserID != userID {
		return domain.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// Create inserts a new task owned by the user.
func (s *TaskService) Create(ctx context.Context, userID string, draft TaskDraft) (domain.Task, error) {
	l := slogx.FromContext(ctx)

	if draft.Status == "" {
		draft.Status = domain.StatusPending
	}
	if draft.Priority == "" {
		draft.Priority = domain.PriorityMedium
	}
	if !draft.Status.Valid() || !draft.Priority.Valid() {
		return domain.Task{}, ErrInvalidTask
	}

	task := domain.Task{
		ID:          idx.New().String(),
		UserID:      userID,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}

	task, err := s.Store.Tasks().GetTaskByID(ctx, task.ID)
	if err != nil {
		return domain.Task{}, err
	}

	l.Info("task created", slog.String("task_id", task.ID), slog.String("user_id", userID))
	return task, nil
}

// Update applies the patch inside a transaction so the read-modify-write
// cannot interleave with a concurrent update.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch TaskPatch) (domain.Task, error) {
	l := slogx.FromContext(ctx)

	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Task{}, ErrInvalidTask
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Task{}, ErrInvalidTask
	}

	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		task, err := tx.Tasks().GetTaskByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if task.UserID != userID {
			return ErrTaskNotFound
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		if patch.ClearDue {
			task.DueDate = nil
		} else if patch.DueDate != nil {
			task.DueDate = patch.DueDate
		}

		if err := tx.Tasks().UpdateTask(ctx, task); err != nil {
			return err
		}

		updated, err = tx.Tasks().GetTaskByID(ctx, taskID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	l.Info("task updated", slog.String("task_id", taskID), slog.String("user_id", userID))
	return updated, nil
}

// Delete removes the task, masking ownership mismatches as not found.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		task, err := tx.Tasks().GetTaskByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if task.UserID != userID {
			return ErrTaskNotFound
		}
		return tx.Tasks().DeleteTask(ctx, taskID)
	})
	if err != nil {
		return err
	}

	l.Info("task deleted", slog.String("task_id", taskID), slog.String("user_id", userID))
	return nil
}

// Stats returns the user's per-status task counts.
func (s *TaskService) Stats(ctx context.Context, userID string) (domain.TaskStats, error) {
	return s.Store.Tasks().CountTasksByStatus(ctx, userID)
}
