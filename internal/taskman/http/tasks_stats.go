package http

import (
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type TaskStatsHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Task Stats Endpoint
//	@Description	Returns the authenticated user's task counts, total and per status.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.TaskStats	"total, pending, inProgress, completed"
//	@Failure		401	{object}	tasksdk.APIError	"invalid or missing token"
//	@Failure		500	{object}	tasksdk.APIError	"internal error"
//	@Router			/v1/tasks/stats [get].
func (h *TaskStatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	stats, err := h.TaskService.Stats(ctx, userID)
	if err != nil {
		log.Error("task stats failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskStats{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
	})
}
