package middleware

// nonce.go — точка раннего этапа обработки: вычисляет CSP nonce и публикует
// его для последующих стадий (заголовок CSP, рендеринг инлайн-скриптов).

import (
	"context"
	"net/http"

	"cspApp/internal/core"
	"cspApp/internal/nonce"
	"cspApp/internal/request"
)

// chainKey — ключ контекста для цепочки внутренних редиректов.
type chainKey struct{}

// WithNonce возвращает middleware, которое привязывает к запросу контекст
// цепочки и разрешает для него nonce.
//
// Если запрос уже несёт цепочку (повторная обработка через Rehandle), она
// продолжается — потомок унаследует значение родителя и энтропия не
// тратится. Конвейер продолжается всегда, успешно или нет: отсутствие
// nonce — деградация, а не отказ в обслуживании.
func WithNonce(rs *nonce.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req, ok := r.Context().Value(chainKey{}).(*request.Request)
			if !ok {
				req = request.New()
			}

			ctx := context.WithValue(r.Context(), chainKey{}, req)

			if v, resolved := rs.Resolve(req); resolved {
				ctx = context.WithValue(ctx, core.CtxNonce, v)
			} else {
				// Переменная остаётся незаданной; запрос обслуживается без nonce
				core.LogError("Не удалось получить энтропию для CSP nonce", map[string]interface{}{
					"path": r.URL.Path,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Rehandle выполняет внутренний редирект: запрос переобрабатывается
// обработчиком h по пути path без нового сетевого обращения. Создаётся
// контекст-потомок, окружение родителя становится видно ему под
// REDIRECT_-ключами, поэтому nonce на всех шагах цепочки один и тот же.
func Rehandle(h http.Handler, w http.ResponseWriter, r *http.Request, path string) {
	parent, ok := r.Context().Value(chainKey{}).(*request.Request)
	if !ok {
		parent = request.New()
	}
	child := request.NewChild(parent)

	r2 := r.Clone(context.WithValue(r.Context(), chainKey{}, child))
	r2.URL.Path = path
	r2.URL.RawQuery = ""
	r2.Method = http.MethodGet

	h.ServeHTTP(w, r2)
}
