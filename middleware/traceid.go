package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const TraceIDKey contextKey = "traceID"
const TraceIDHeader = "X-Trace-ID"

// TraceID injects a UUID trace ID into every request context and response header.
// An incoming X-Trace-ID is reused.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(TraceIDHeader, traceID)
		ctx := context.WithValue(r.Context(), TraceIDKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetTraceID(ctx context.Context) string {
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}
