package middleware

// security.go — заголовки безопасности, включая CSP с per-request nonce
// (OWASP A05: Security Misconfiguration).

import (
	"net/http"
	"strings"

	"github.com/unrolled/secure"

	"cspApp/internal/core"
)

// SecureHeaders возвращает middleware заголовков безопасности. Статические
// заголовки (nosniff, запрет фреймов, referrer policy, HSTS) ставит
// unrolled/secure; Content-Security-Policy собирается на каждый запрос,
// потому что содержит nonce.
func SecureHeaders(isProduction bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		STSSeconds:           31536000,
		STSIncludeSubdomains: true,
		STSPreload:           true,
		// За reverse-proxy TLS-терминация снаружи: HTTPS распознаём по заголовку
		SSLProxyHeaders: map[string]string{"X-Forwarded-Proto": "https"},
		// В dev не навязываем HSTS и прочие прод-строгости
		IsDevelopment: !isProduction,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sec.Process(w, r); err != nil {
				core.Fail(w, r, core.Internal("ошибка обработки заголовков безопасности", err))
				return
			}

			// Nonce из контекста; при его отсутствии политика собирается
			// без nonce-источника — инлайн-скрипты просто не авторизуются
			nonce, _ := core.NonceFrom(r.Context().Value(core.CtxNonce))
			w.Header().Set("Content-Security-Policy", ContentSecurityPolicy(nonce))

			next.ServeHTTP(w, r)
		})
	}
}

// ContentSecurityPolicy собирает значение заголовка CSP. При непустом nonce
// script-src и style-src получают источник 'nonce-<значение>'.
func ContentSecurityPolicy(nonce string) string {
	scriptSrc := "script-src 'self' https://cdn.jsdelivr.net"
	styleSrc := "style-src 'self' https://cdn.jsdelivr.net"
	if nonce != "" {
		scriptSrc += " " + nonceSource(nonce)
		styleSrc += " " + nonceSource(nonce)
	}

	return strings.Join([]string{
		"default-src 'self'",
		"img-src 'self' data:",
		scriptSrc,
		styleSrc,
		"font-src 'self' https://cdn.jsdelivr.net data:",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
		"base-uri 'self'",
	}, "; ")
}

// nonceSource форматирует nonce как источник CSP: 'nonce-<значение>'.
func nonceSource(nonce string) string {
	return "'nonce-" + nonce + "'"
}
