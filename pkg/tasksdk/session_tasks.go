package tasksdk

import (
	"context"
	"net/http"
	"net/url"
)

// taskQuery encodes a filter as query parameters, omitting zero values.
func taskQuery(filter TaskFilter) string {
	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		params.Set("priority", filter.Priority)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.SortBy != "" {
		params.Set("sortBy", filter.SortBy)
	}
	if filter.Order != "" {
		params.Set("order", filter.Order)
	}

	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// ListTasks returns the caller's tasks, narrowed and ordered by filter.
func (s *Session) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/tasks"+taskQuery(filter), nil)
	if err != nil {
		return nil, err
	}

	var list TaskListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Tasks, nil
}

// GetTask fetches a single task by id.
func (s *Session) GetTask(ctx context.Context, taskID string) (Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/tasks/"+url.PathEscape(taskID), nil)
	if err != nil {
		return Task{}, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return Task{}, err
	}

	return task, nil
}

// CreateTask creates a task owned by the authenticated user.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/tasks", req)
	if err != nil {
		return Task{}, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusCreated); err != nil {
		return Task{}, err
	}

	return task, nil
}

// UpdateTask applies a partial update and returns the updated record.
func (s *Session) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/tasks/"+url.PathEscape(taskID), req)
	if err != nil {
		return Task{}, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return Task{}, err
	}

	return task, nil
}

// DeleteTask permanently removes a task.
func (s *Session) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/tasks/"+url.PathEscape(taskID), nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// TaskStats returns per-status counts over the caller's tasks.
func (s *Session) TaskStats(ctx context.Context) (TaskStats, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/tasks/stats", nil)
	if err != nil {
		return TaskStats{}, err
	}

	var stats TaskStats
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return TaskStats{}, err
	}

	return stats, nil
}
