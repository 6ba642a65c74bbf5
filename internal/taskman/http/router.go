package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Banup3/TaskManager/internal/taskman/service"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/pkg/httpx"
	"github.com/Banup3/TaskManager/pkg/jwtx"
	"github.com/Banup3/TaskManager/pkg/slogx"

	_ "github.com/Banup3/TaskManager/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
	TaskService *service.TaskService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task Manager API
//	@version		0.1.0
//	@description	Task management service with per-user task lists, filtering and
//	@description	stats. Authentication uses stateless HS256-signed bearer tokens.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	meHandler := &MeHandler{AuthService: r.AuthService}
	profileHandler := &ProfileHandler{UserService: r.UserService}

	// POST /auth/signup - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP + email to slow brute force
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - authenticated, lenient rate limit by user
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PUT /auth/profile - authenticated, moderate rate limit (re-hashes passwords)
	r.Mux.Handle("PUT /v1/auth/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /auth/profile - authenticated, strict rate limit (irreversible)
	r.Mux.Handle("DELETE /v1/auth/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTasks() {
	listHandler := &TaskListHandler{TaskService: r.TaskService}
	createHandler := &TaskCreateHandler{TaskService: r.TaskService}
	itemHandler := &TaskItemHandler{TaskService: r.TaskService}
	statsHandler := &TaskStatsHandler{TaskService: r.TaskService}

	// All task endpoints require authentication; lenient per-user limits.
	secured := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/tasks", secured(listHandler))
	r.Mux.Handle("POST /v1/tasks", secured(createHandler))
	r.Mux.Handle("GET /v1/tasks/stats", secured(statsHandler))
	r.Mux.Handle("GET /v1/tasks/{id}", secured(http.HandlerFunc(itemHandler.HandleGet)))
	r.Mux.Handle("PUT /v1/tasks/{id}", secured(http.HandlerFunc(itemHandler.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/tasks/{id}", secured(http.HandlerFunc(itemHandler.HandleDelete)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
