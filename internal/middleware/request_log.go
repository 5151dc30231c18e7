package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"applause-ledger/internal/platform/logger"
)

// RequestLog loguea una línea por request. Va después de chimw.RequestID
// para poder incluir el request_id.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if actor, ok := GetActor(r.Context()); ok {
				fields["actor"] = actor
			}

			switch {
			case status >= 500:
				log.Error("request failed", fields)
			case status >= 400:
				log.Warn("request rejected", fields)
			default:
				log.Debug("request served", fields)
			}
		})
	}
}
