package http

import (
	"errors"
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/internal/taskman/validate"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// HandleUpdate godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Update name, bio, avatar or password. Omitted fields keep their stored
//	@Description	values. A fresh token is returned so its claims match the new profile.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.UpdateProfileRequest	true	"fields to change"
//	@Success		200		{object}	tasksdk.AuthResponse			"token, user"
//	@Failure		400		{object}	tasksdk.APIError				"validation failures"
//	@Failure		401		{object}	tasksdk.APIError				"invalid or missing token"
//	@Failure		500		{object}	tasksdk.APIError				"internal error"
//	@Router			/v1/auth/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.UpdateProfileRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	if apiErr := validate.Struct(req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	res, err := h.UserService.UpdateProfile(ctx, userID, req.Name, req.Bio, req.Avatar, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer exists, treat as stale credentials.
			tasksdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("profile update failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.AuthResponse{
		Token: res.Token,
		User:  profileResponse(res.User),
	})
}

// HandleDelete godoc
//
//	@Summary		Delete Account Endpoint
//	@Description	Permanently delete the authenticated account and all of its tasks.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"deleted"
//	@Failure		401	{object}	tasksdk.APIError	"invalid or missing token"
//	@Failure		500	{object}	tasksdk.APIError	"internal error"
//	@Router			/v1/auth/profile [delete].
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.UserService.DeleteAccount(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer exists, treat as stale credentials.
			tasksdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("account deletion failed", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
