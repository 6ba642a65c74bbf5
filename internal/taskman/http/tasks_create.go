package http

import (
	"errors"
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/validate"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type TaskCreateHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Create a task owned by the authenticated user. Status defaults to
//	@Description	"pending" and priority to "medium" when omitted.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.CreateTaskRequest	true	"title plus optional fields"
//	@Success		201		{object}	tasksdk.Task				"the stored task"
//	@Failure		400		{object}	tasksdk.APIError			"validation failures"
//	@Failure		401		{object}	tasksdk.APIError			"invalid or missing token"
//	@Failure		500		{object}	tasksdk.APIError			"internal error"
//	@Router			/v1/tasks [post].
func (h *TaskCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.CreateTaskRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	if apiErr := validate.Struct(req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	draft := service.TaskDraft{
		Title:   req.Title,
		DueDate: parseDue(req.DueDate),
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Status != nil {
		draft.Status = domain.Status(*req.Status)
	}
	if req.Priority != nil {
		draft.Priority = domain.Priority(*req.Priority)
	}

	task, err := h.TaskService.Create(ctx, userID, draft)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTask) {
			tasksdk.ErrInvalidBody.WriteError(w)
			return
		}
		log.Error("task create failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, taskResponse(task))
}
