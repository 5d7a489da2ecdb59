package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/goal-tracker/internal/config"
)

// Recoverer turns a panic in any downstream handler into a plain-text 500
// whose body is "500: <cause>".
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			config.WithContext(r.Context()).
				WithField("stack", string(debug.Stack())).
				Errorf("Recovered from panic: %v", rec)

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "500: %v", rec)
		}()

		next.ServeHTTP(w, r)
	})
}
