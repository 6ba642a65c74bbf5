package tasksdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Banup3/TaskManager/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// taskServer is a tiny in-memory backend for exercising the cache. Handlers
// can be swapped per test to force failures.
type taskServer struct {
	mux      *http.ServeMux
	tasks    map[string]tasksdk.Task
	failNext atomic.Bool
	nextID   atomic.Int64
}

func newTaskServer(t *testing.T) (*taskServer, *tasksdk.Session) {
	t.Helper()

	ts := &taskServer{
		mux:   http.NewServeMux(),
		tasks: make(map[string]tasksdk.Task),
	}

	ts.mux.HandleFunc("GET /v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		out := tasksdk.TaskListResponse{Tasks: []tasksdk.Task{}}
		for _, task := range ts.tasks {
			out.Tasks = append(out.Tasks, task)
		}
		writeJSON(w, http.StatusOK, out)
	})
	ts.mux.HandleFunc("GET /v1/tasks/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := tasksdk.TaskStats{}
		for _, task := range ts.tasks {
			stats.Total++
			switch task.Status {
			case "pending":
				stats.Pending++
			case "in-progress":
				stats.InProgress++
			case "completed":
				stats.Completed++
			}
		}
		writeJSON(w, http.StatusOK, stats)
	})
	ts.mux.HandleFunc("POST /v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		if ts.failNext.Swap(false) {
			tasksdk.ErrServer.WriteError(w)
			return
		}
		var req tasksdk.CreateTaskRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		task := tasksdk.Task{
			ID:        "srv-" + strconv.FormatInt(ts.nextID.Add(1), 10),
			Title:     req.Title,
			Status:    "pending",
			Priority:  "medium",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.DueDate != nil {
			due, _ := time.Parse(time.RFC3339, *req.DueDate)
			task.DueDate = &due
		}
		ts.tasks[task.ID] = task
		writeJSON(w, http.StatusCreated, task)
	})
	ts.mux.HandleFunc("PUT /v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		if ts.failNext.Swap(false) {
			tasksdk.ErrServer.WriteError(w)
			return
		}
		task, ok := ts.tasks[r.PathValue("id")]
		if !ok {
			tasksdk.ErrTaskNotFound.WriteError(w)
			return
		}
		var req tasksdk.UpdateTaskRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.DueDate != nil {
			if req.DueDate.Valid {
				due, _ := time.Parse(time.RFC3339, req.DueDate.Value)
				task.DueDate = &due
			} else {
				task.DueDate = nil
			}
		}
		task.UpdatedAt = time.Now().UTC()
		ts.tasks[task.ID] = task
		writeJSON(w, http.StatusOK, task)
	})
	ts.mux.HandleFunc("DELETE /v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		if ts.failNext.Swap(false) {
			tasksdk.ErrServer.WriteError(w)
			return
		}
		if _, ok := ts.tasks[r.PathValue("id")]; !ok {
			tasksdk.ErrTaskNotFound.WriteError(w)
			return
		}
		delete(ts.tasks, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(ts.mux)
	t.Cleanup(srv.Close)

	session := tasksdk.NewClient(srv.URL).NewSessionFromToken("tok")
	return ts, session
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestTaskCache_CreateUpdatesCacheAndStats(t *testing.T) {
	t.Parallel()

	_, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	created, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "buy milk"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	tasks := cache.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, "buy milk", tasks[0].Title)

	stats := cache.Stats()
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Pending)
}

func TestTaskCache_CreateFailureLeavesCacheUntouched(t *testing.T) {
	t.Parallel()

	ts, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	ts.failNext.Store(true)
	_, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "doomed"})
	require.Error(t, err)
	require.Empty(t, cache.Tasks())
	require.Equal(t, 0, cache.Stats().Total)
}

func TestTaskCache_UpdateIsOptimisticAndConfirmed(t *testing.T) {
	t.Parallel()

	_, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	created, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "draft"})
	require.NoError(t, err)

	status := "completed"
	updated, err := cache.Update(context.Background(), created.ID, tasksdk.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "completed", updated.Status)

	tasks := cache.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, "completed", tasks[0].Status)

	stats := cache.Stats()
	require.Equal(t, 0, stats.Pending)
	require.Equal(t, 1, stats.Completed)
}

func TestTaskCache_UpdateClearsDueDateWithNull(t *testing.T) {
	t.Parallel()

	_, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	due := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	created, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "dated", DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	updated, err := cache.Update(context.Background(), created.ID, tasksdk.UpdateTaskRequest{DueDate: &tasksdk.NullString{}})
	require.NoError(t, err)
	require.Nil(t, updated.DueDate)

	tasks := cache.Tasks()
	require.Len(t, tasks, 1)
	require.Nil(t, tasks[0].DueDate)
}

func TestTaskCache_UpdateRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	ts, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	created, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "keep me"})
	require.NoError(t, err)

	ts.failNext.Store(true)
	title := "mangled"
	_, err = cache.Update(context.Background(), created.ID, tasksdk.UpdateTaskRequest{Title: &title})
	require.Error(t, err)

	tasks := cache.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, "keep me", tasks[0].Title, "failed update must restore the previous state")
}

func TestTaskCache_DeleteRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	ts, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	created, err := cache.Create(context.Background(), tasksdk.CreateTaskRequest{Title: "survivor"})
	require.NoError(t, err)

	ts.failNext.Store(true)
	require.Error(t, cache.Delete(context.Background(), created.ID))
	require.Len(t, cache.Tasks(), 1, "failed delete must restore the task")

	require.NoError(t, cache.Delete(context.Background(), created.ID))
	require.Empty(t, cache.Tasks())
	require.Equal(t, 0, cache.Stats().Total)
}

func TestTaskCache_RefreshReplacesState(t *testing.T) {
	t.Parallel()

	ts, session := newTaskServer(t)
	cache := tasksdk.NewTaskCache(session)

	ts.tasks["t1"] = tasksdk.Task{ID: "t1", Title: "on server", Status: "in-progress"}

	require.NoError(t, cache.Refresh(context.Background(), tasksdk.TaskFilter{}))
	require.NoError(t, cache.RefreshStats(context.Background()))

	require.Len(t, cache.Tasks(), 1)
	require.Equal(t, 1, cache.Stats().InProgress)
}
