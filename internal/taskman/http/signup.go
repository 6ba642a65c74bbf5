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

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account and sign in. Returns a bearer token and the stored profile.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.SignupRequest	true	"name, email, password"
//	@Success		201		{object}	tasksdk.AuthResponse	"token, user"
//	@Failure		400		{object}	tasksdk.APIError		"validation failures, one entry per field"
//	@Failure		409		{object}	tasksdk.APIError		"email already registered"
//	@Failure		500		{object}	tasksdk.APIError		"internal error"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.SignupRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	if apiErr := validate.Struct(req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	res, err := h.AuthService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			tasksdk.ErrDuplicateEmail.WriteError(w)
			return
		}
		log.Error("signup failed", "err", err)
		tasksdk.ErrServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, tasksdk.AuthResponse{
		Token: res.Token,
		User:  profileResponse(res.User),
	})
}
