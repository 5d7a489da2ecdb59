package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/complete", h.SetComplete)
	r.Delete("/{id}", h.Delete)

	return r
}

func ViewRoutes(v *ViewHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/goal-list", v.GoalList)
	r.Post("/goal", v.CreateGoal)
	r.Patch("/goal/{id}/mark-complete", v.MarkComplete)
	r.Patch("/goal/{id}/mark-incomplete", v.MarkIncomplete)
	r.Delete("/goal/{id}", v.DeleteGoal)

	return r
}
