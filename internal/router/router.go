package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"github.com/saulo-duarte/goal-tracker/internal/goal"
	"github.com/saulo-duarte/goal-tracker/internal/metrics"
	"github.com/saulo-duarte/goal-tracker/internal/middlewares"
	"github.com/saulo-duarte/goal-tracker/internal/user"
	"github.com/saulo-duarte/goal-tracker/internal/web"
)

type RouterConfig struct {
	GoalHandler     *goal.Handler
	GoalViewHandler *goal.ViewHandler
	UserHandler     *user.Handler
	WebHandler      *web.Handler
	StaticDir       string
	DB              *gorm.DB
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.Metrics)

	r.Get("/", cfg.WebHandler.Home)
	r.Handle("/static/*", web.Static("/static/", cfg.StaticDir))

	r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	r.Mount("/users", user.Routes(cfg.UserHandler))
	r.Mount("/view", goal.ViewRoutes(cfg.GoalViewHandler))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/healthz", health(cfg.DB))

	return r
}

func health(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := config.Ping(r.Context(), db); err != nil {
			config.WithContext(r.Context()).WithError(err).Error("Health check failed")
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
