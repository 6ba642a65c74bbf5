package tasksdk

import (
	"context"
	"sync"
)

// TaskCache is an in-memory task list kept in sync with the server. Create,
// Update and Delete mutate the cache optimistically: the local list changes
// before the server confirms, and rolls back to the pre-request snapshot if
// the request fails. A failed request therefore never leaves phantom state
// behind; the caller gets the typed error to surface in the UI.
type TaskCache struct {
	session *Session

	mu    sync.RWMutex
	tasks []Task
	stats TaskStats
}

// NewTaskCache creates a cache bound to an authenticated session.
func NewTaskCache(session *Session) *TaskCache {
	return &TaskCache{session: session}
}

// Tasks returns a copy of the cached list.
func (c *TaskCache) Tasks() []Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Stats returns the cached per-status counts.
func (c *TaskCache) Stats() TaskStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Refresh replaces the cached list with the server's view.
func (c *TaskCache) Refresh(ctx context.Context, filter TaskFilter) error {
	tasks, err := c.session.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()
	return nil
}

// RefreshStats replaces the cached counts with the server's view.
func (c *TaskCache) RefreshStats(ctx context.Context) error {
	stats, err := c.session.TaskStats(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.stats = stats
	c.mu.Unlock()
	return nil
}

// Create sends the task to the server and prepends the created record to the
// cached list. The record needs its server-assigned id, so the list mutation
// happens on confirmation; a failure leaves the cache exactly as it was.
func (c *TaskCache) Create(ctx context.Context, req CreateTaskRequest) (Task, error) {
	task, err := c.session.CreateTask(ctx, req)
	if err != nil {
		return Task{}, err
	}

	c.mu.Lock()
	c.tasks = append([]Task{task}, c.tasks...)
	bumpStats(&c.stats, task.Status, +1)
	c.mu.Unlock()

	return task, nil
}

// Update optimistically applies the partial update to the cached record,
// then confirms with the server. On success the cached record is replaced by
// the server's version; on failure the snapshot is restored.
func (c *TaskCache) Update(ctx context.Context, taskID string, req UpdateTaskRequest) (Task, error) {
	snapshot := c.snapshot()
	c.applyLocalUpdate(taskID, req)

	task, err := c.session.UpdateTask(ctx, taskID, req)
	if err != nil {
		c.restore(snapshot)
		return Task{}, err
	}

	c.mu.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			bumpStats(&c.stats, snapshot.statusOf(taskID), -1)
			bumpStats(&c.stats, task.Status, +1)
			c.tasks[i] = task
			break
		}
	}
	c.mu.Unlock()

	return task, nil
}

// Delete optimistically removes the task from the cached list, restoring the
// snapshot if the server rejects the deletion.
func (c *TaskCache) Delete(ctx context.Context, taskID string) error {
	snapshot := c.snapshot()

	c.mu.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			bumpStats(&c.stats, c.tasks[i].Status, -1)
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if err := c.session.DeleteTask(ctx, taskID); err != nil {
		c.restore(snapshot)
		return err
	}

	return nil
}

type cacheSnapshot struct {
	tasks []Task
	stats TaskStats
}

func (s cacheSnapshot) statusOf(taskID string) string {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			return s.tasks[i].Status
		}
	}
	return ""
}

func (c *TaskCache) snapshot() cacheSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tasks := make([]Task, len(c.tasks))
	copy(tasks, c.tasks)
	return cacheSnapshot{tasks: tasks, stats: c.stats}
}

func (c *TaskCache) restore(s cacheSnapshot) {
	c.mu.Lock()
	c.tasks = s.tasks
	c.stats = s.stats
	c.mu.Unlock()
}

// applyLocalUpdate mutates the cached record in place with the fields the
// update supplies. An explicit null dueDate clears the deadline right away;
// a new value is left to the server response since it arrives as a string
// here.
func (c *TaskCache) applyLocalUpdate(taskID string, req UpdateTaskRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID != taskID {
			continue
		}
		if req.Title != nil {
			c.tasks[i].Title = *req.Title
		}
		if req.Description != nil {
			c.tasks[i].Description = *req.Description
		}
		if req.Status != nil {
			c.tasks[i].Status = *req.Status
		}
		if req.Priority != nil {
			c.tasks[i].Priority = *req.Priority
		}
		if req.DueDate != nil && !req.DueDate.Valid {
			c.tasks[i].DueDate = nil
		}
		return
	}
}

func bumpStats(stats *TaskStats, status string, delta int) {
	if status == "" {
		return
	}

	stats.Total += delta
	switch status {
	case "pending":
		stats.Pending += delta
	case "in-progress":
		stats.InProgress += delta
	case "completed":
		stats.Completed += delta
	}
}
