package http

import (
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/validate"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type TaskListHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	Returns the authenticated user's tasks. Supports status/priority filters,
//	@Description	case-insensitive search over title and description, and sorting.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string						false	"pending | in-progress | completed"
//	@Param			priority	query		string						false	"low | medium | high"
//	@Param			search		query		string						false	"substring over title and description"
//	@Param			sortBy		query		string						false	"createdAt | updatedAt | dueDate | title | status | priority"
//	@Param			order		query		string						false	"asc | desc (default desc)"
//	@Success		200			{object}	tasksdk.TaskListResponse	"tasks"
//	@Failure		400			{object}	tasksdk.APIError			"invalid filter values"
//	@Failure		401			{object}	tasksdk.APIError			"invalid or missing token"
//	@Failure		500			{object}	tasksdk.APIError			"internal error"
//	@Router			/v1/tasks [get].
func (h *TaskListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	q := r.URL.Query()
	filter := tasksdk.TaskFilter{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sortBy"),
		Order:    q.Get("order"),
	}
	if apiErr := validate.Struct(filter); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	tasks, err := h.TaskService.List(ctx, userID, domain.TaskFilter{
		Status:   domain.Status(filter.Status),
		Priority: domain.Priority(filter.Priority),
		Search:   filter.Search,
		SortBy:   filter.SortBy,
		Order:    filter.Order,
	})
	if err != nil {
		log.Error("task list failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	out := tasksdk.TaskListResponse{Tasks: make([]tasksdk.Task, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, taskResponse(t))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}
