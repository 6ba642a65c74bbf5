package http

import (
	"errors"
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Returns the profile of the authenticated user.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.UserProfile	"id, name, email, bio, avatar"
//	@Failure		401	{object}	tasksdk.APIError	"invalid or missing token"
//	@Failure		500	{object}	tasksdk.APIError	"internal error"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.AuthService.GetCurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer exists, treat as stale credentials.
			tasksdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Warn("failed to load user", "user_id", userID, "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, profileResponse(user))
}
