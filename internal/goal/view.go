package goal

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/goal-tracker/internal/config"
)

// ViewHandler serves the HTML fragments behind the htmx controls of the home screen.
// Every mutation answers with the re-rendered goal list.
type ViewHandler struct {
	service Service
}

func NewViewHandler(service Service) *ViewHandler {
	return &ViewHandler{service: service}
}

func (v *ViewHandler) GoalList(w http.ResponseWriter, r *http.Request) {
	v.renderList(w, r)
}

func (v *ViewHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := v.service.Create(r.Context(), GoalOptions{Title: r.PostForm.Get("title")}); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	v.renderList(w, r)
}

func (v *ViewHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	v.setComplete(w, r, true)
}

func (v *ViewHandler) MarkIncomplete(w http.ResponseWriter, r *http.Request) {
	v.setComplete(w, r, false)
}

func (v *ViewHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := v.service.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	v.renderList(w, r)
}

func (v *ViewHandler) setComplete(w http.ResponseWriter, r *http.Request, isComplete bool) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	// A goal removed from another tab just drops out of the re-rendered list.
	err = v.service.ToggleComplete(r.Context(), id, isComplete)
	if err != nil && !errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	v.renderList(w, r)
}

func (v *ViewHandler) renderList(w http.ResponseWriter, r *http.Request) {
	goals, err := v.service.ReadAll(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.HTML(w, http.StatusOK, List(goals))
}
