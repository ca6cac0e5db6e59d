package middleware

// common.go

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"cspApp/internal/core"
)

// UseCommon подключает базовые middleware для всего приложения:
// идентификатор запроса, реальный IP за прокси, восстановление после паник,
// таймаут обработки и журналирование запросов.
func UseCommon(r *chi.Mux, requestTimeout time.Duration) {
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	if requestTimeout > 0 {
		r.Use(chimw.Timeout(requestTimeout))
	}
}

// requestLogger пишет итог обработки каждого запроса в общий журнал.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		core.LogInfo("Запрос обработан", map[string]interface{}{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"remote":     r.RemoteAddr,
		})
	})
}
