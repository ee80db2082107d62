package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const serverErrorMsg = "An error occurred on the server. Please try again later."

type RecoverMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoverMiddleware(logger *zap.SugaredLogger) *RecoverMiddleware {
	return &RecoverMiddleware{
		logs: logger,
	}
}

// Recover turns a handler panic into a generic 500 so no stack trace reaches
// the client.
func (m *RecoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logs.Errorw("handler panicked",
				"panic", rec,
				"path", r.URL.Path,
				"request_id", GetRequestID(r))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": serverErrorMsg})
		}()

		next.ServeHTTP(w, r)
	})
}
