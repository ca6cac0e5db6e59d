package httpx

// router.go

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"cspApp/internal/core"
	"cspApp/internal/http/handler"
	"cspApp/internal/http/middleware"
	"cspApp/internal/nonce"
	"cspApp/internal/view"
)

// NewRouter создаёт chi-маршрутизатор и подключает все middleware.
// WithNonce стоит раньше SecureHeaders: заголовок CSP собирается из уже
// разрешённого nonce.
func NewRouter(cfg core.Config, tpl *view.Templates, rs *nonce.Resolver) http.Handler {
	r := chi.NewRouter()

	middleware.UseCommon(r, cfg.RequestTimeout)
	r.Use(middleware.WithNonce(rs))
	r.Use(middleware.SecureHeaders(cfg.Env == "prod"))

	// --- Страницы ---
	r.Get("/", handler.Home(tpl))
	r.Get("/about", handler.About(tpl))
	r.Get("/form", handler.FormIndex(tpl))
	r.Post("/form", handler.FormSubmit(tpl))

	// --- Служебные ---
	r.Get("/healthz", handler.Health)
	r.Get("/debug/nonce", handler.DebugNonce)

	// --- Страница ошибки (цель внутреннего редиректа) ---
	r.Get("/error/404", handler.NotFound(tpl))

	// --- Статика ---
	static := http.FileServer(http.Dir("web/assets"))
	if os.Getenv("APP_ENV") == "prod" {
		static = cacheStatic(static)
	}
	r.Handle("/assets/*", http.StripPrefix("/assets/", static))

	// --- 404 через внутренний редирект ---
	// Неизвестный путь переобрабатывается как /error/404: новый контекст в
	// той же цепочке, nonce наследуется, страница ошибки авторизует свои
	// инлайн-скрипты тем же значением
	r.NotFound(func(w http.ResponseWriter, rq *http.Request) {
		middleware.Rehandle(r, w, rq, "/error/404")
	})

	return r
}

// cacheStatic — долгоживущий кэш для статики в продакшене.
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Header().Set("Vary", "Accept-Encoding")
		next.ServeHTTP(w, r)
	})
}
