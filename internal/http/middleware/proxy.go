package middleware

// proxy.go

import (
	"net"
	"net/http"
	"strings"

	"cspApp/internal/core"
)

// TrustedProxy пропускает запросы только от доверенных прокси и
// восстанавливает реальный IP и схему клиента из проксирующих заголовков
// (OWASP A05: Security Misconfiguration). Подключается только когда
// приложение стоит за известным reverse-proxy.
func TrustedProxy(trustedIPs []string) func(http.Handler) http.Handler {
	trusted := make(map[string]struct{}, len(trustedIPs))
	for _, ip := range trustedIPs {
		trusted[ip] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || clientIP == "" {
				core.Fail(w, r, core.BadRequest("неверный адрес клиента", err))
				return
			}

			if _, ok := trusted[clientIP]; !ok {
				core.Fail(w, r, core.Forbidden("недоверенный прокси"))
				return
			}

			// Первый валидный IP из X-Forwarded-For — адрес клиента
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				for _, ip := range strings.Split(forwarded, ",") {
					ip = strings.TrimSpace(ip)
					if net.ParseIP(ip) != nil {
						r.RemoteAddr = ip
						break
					}
				}
			}

			if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
				r.URL.Scheme = "https"
			}

			next.ServeHTTP(w, r)
		})
	}
}
