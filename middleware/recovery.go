package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// Recovery catches panics, logs them, and returns HTTP 500. The trace ID is
// taken from the context or, when TraceID runs inside Recovery, from the
// response header.
func Recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					traceID := GetTraceID(r.Context())
					if traceID == "" {
						traceID = w.Header().Get(TraceIDHeader)
					}
					log.Error("panic recovered",
						zap.Any("error", rec),
						zap.String("trace_id", traceID),
						zap.String("path", r.URL.Path),
					)
					respondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
