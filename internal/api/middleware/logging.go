package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// LoggingMiddleware пишет в лог каждый запрос: метод, путь, статус, длительность
func LoggingMiddleware(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("HTTP %s %s - status=%d, duration=%s", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				log.Warn("HTTP %s %s - status=%d, duration=%s", r.Method, r.URL.Path, rec.status, duration)
			default:
				log.Info("HTTP %s %s - status=%d, duration=%s", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
