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

// TaskItemHandler serves the single-task operations. Tasks that do not exist
// and tasks owned by someone else both come back as 404.
type TaskItemHandler struct {
	TaskService *service.TaskService
}

// HandleGet godoc
//
//	@Summary		Get Task Endpoint
//	@Description	Fetch a single task by id.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"task id (ULID)"
//	@Success		200	{object}	tasksdk.Task		"the task"
//	@Failure		401	{object}	tasksdk.APIError	"invalid or missing token"
//	@Failure		404	{object}	tasksdk.APIError	"no such task for this user"
//	@Failure		500	{object}	tasksdk.APIError	"internal error"
//	@Router			/v1/tasks/{id} [get].
func (h *TaskItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	task, err := h.TaskService.Get(ctx, userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			tasksdk.ErrTaskNotFound.WriteError(w)
			return
		}
		log.Error("task get failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Partially update a task. Omitted fields keep their stored values;
//	@Description	a null dueDate clears the deadline.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"task id (ULID)"
//	@Param			body	body		tasksdk.UpdateTaskRequest	true	"fields to change"
//	@Success		200		{object}	tasksdk.Task				"the updated task"
//	@Failure		400		{object}	tasksdk.APIError			"validation failures"
//	@Failure		401		{object}	tasksdk.APIError			"invalid or missing token"
//	@Failure		404		{object}	tasksdk.APIError			"no such task for this user"
//	@Failure		500		{object}	tasksdk.APIError			"internal error"
//	@Router			/v1/tasks/{id} [put].
func (h *TaskItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.UpdateTaskRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	if apiErr := validate.Struct(req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		if req.DueDate.Valid {
			patch.DueDate = parseDue(&req.DueDate.Value)
		} else {
			patch.ClearDue = true
		}
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := h.TaskService.Update(ctx, userID, r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			tasksdk.ErrTaskNotFound.WriteError(w)
			return
		}
		if errors.Is(err, service.ErrInvalidTask) {
			tasksdk.ErrInvalidBody.WriteError(w)
			return
		}
		log.Error("task update failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Delete a task by id.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"task id (ULID)"
//	@Success		204	"deleted"
//	@Failure		401	{object}	tasksdk.APIError	"invalid or missing token"
//	@Failure		404	{object}	tasksdk.APIError	"no such task for this user"
//	@Failure		500	{object}	tasksdk.APIError	"internal error"
//	@Router			/v1/tasks/{id} [delete].
func (h *TaskItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.TaskService.Delete(ctx, userID, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			tasksdk.ErrTaskNotFound.WriteError(w)
			return
		}
		log.Error("task delete failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
