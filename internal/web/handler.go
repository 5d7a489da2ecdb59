package web

import (
	"net/http"

	"github.com/saulo-duarte/goal-tracker/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	config.HTML(w, http.StatusOK, Layout("Goal Tracker", HomeScreen()))
}

// Static serves files under dir, stripping prefix from the request path.
func Static(prefix, dir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
}
