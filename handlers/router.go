package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meowjesty/tasknest/core/response"
	"github.com/meowjesty/tasknest/core/session"
	"github.com/meowjesty/tasknest/middleware"
	"github.com/meowjesty/tasknest/pkg/ratelimiter"
	"github.com/meowjesty/tasknest/users"
)

const welcomePage = `<!DOCTYPE html>
<html>
	<head><title>tasknest</title></head>
	<body>
		<h1>Welcome to tasknest!</h1>
		<p>Register at <code>POST /users</code>, login at <code>POST /users/login</code>,
		and keep your tasks under <code>/tasks</code>.</p>
	</body>
</html>
`

// RouterConfig collects everything the HTTP surface depends on.
type RouterConfig struct {
	Logger   *slog.Logger
	Sessions *session.Manager[SessionState]
	Users    UserStore
	Tasks    TaskStore

	// LoginLimiter throttles POST /users/login per client IP. Nil disables
	// throttling.
	LoginLimiter ratelimiter.RateLimiter

	// Healthchecks are probed by GET /health; any failure turns the
	// endpoint into a 503.
	Healthchecks map[string]func(context.Context) error

	// MetricsRegistry defaults to the global Prometheus registerer.
	MetricsRegistry prometheus.Registerer
}

// NewRouter assembles the full route tree with the middleware stack applied.
func NewRouter(cfg RouterConfig) http.Handler {
	userHandler := NewUserHandler(cfg.Users, cfg.Sessions)
	taskHandler := NewTaskHandler(cfg.Tasks, cfg.Sessions)

	guard := middleware.BearerAuth[SessionState]{
		Sessions:        cfg.Sessions,
		Token:           IdentityToken,
		ErrNotLoggedIn:  users.ErrNotLoggedIn,
		ErrInvalidToken: users.ErrInvalidToken,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Metrics(middleware.MetricsConfig{Registry: cfg.MetricsRegistry}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		_, _ = w.Write([]byte(welcomePage))
	})
	r.Get("/health", healthHandler(cfg.Healthchecks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/users", userHandler.Insert)
	r.Get("/users", userHandler.FindAll)
	r.Get("/users/{id:[0-9]+}", userHandler.FindByID)
	if cfg.LoginLimiter != nil {
		r.With(middleware.RateLimit(cfg.LoginLimiter, middleware.ClientIP)).
			Post("/users/login", userHandler.Login)
	} else {
		r.Post("/users/login", userHandler.Login)
	}

	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware)
		r.Put("/users", userHandler.Update)
		r.Delete("/users/{id:[0-9]+}", userHandler.Delete)
		r.Delete("/users/logout", userHandler.Logout)

		r.Post("/tasks", taskHandler.Insert)
		r.Put("/tasks", taskHandler.Update)
		r.Delete("/tasks/{id:[0-9]+}", taskHandler.Delete)
		r.Post("/tasks/{id:[0-9]+}/done", taskHandler.Done)
		r.Delete("/tasks/{id:[0-9]+}/undo", taskHandler.Undo)
	})

	r.Get("/tasks", taskHandler.Find)
	r.Get("/tasks/ongoing", taskHandler.FindOngoing)
	r.Get("/tasks/{id:[0-9]+}", taskHandler.FindByID)

	// The favorite slot is session-scoped, not identity-scoped, so it
	// stays reachable without a bearer token.
	r.Post("/tasks/favorite/{id:[0-9]+}", taskHandler.Favorite)
	r.Get("/tasks/favorite", taskHandler.FindFavorite)

	return r
}

func healthHandler(checks map[string]func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]string, len(checks))
		healthy := true
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}

		if !healthy {
			response.JSONWithStatus(w, status, http.StatusServiceUnavailable)
			return
		}
		response.JSON(w, status)
	}
}
