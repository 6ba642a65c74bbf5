package http

import (
	"errors"
	"net/http"

	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/validate"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/slogx"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a bearer token. Unknown emails and
//	@Description	wrong passwords produce the same 401 so neither can be probed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	tasksdk.AuthResponse	"token, user"
//	@Failure		400		{object}	tasksdk.APIError		"validation failures"
//	@Failure		401		{object}	tasksdk.APIError		"invalid email or password"
//	@Failure		500		{object}	tasksdk.APIError		"internal error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.LoginRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	if apiErr := validate.Struct(req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	res, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			tasksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.AuthResponse{
		Token: res.Token,
		User:  profileResponse(res.User),
	})
}
