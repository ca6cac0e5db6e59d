package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cspApp/internal/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestContentSecurityPolicyWithNonce(t *testing.T) {
	csp := middleware.ContentSecurityPolicy("AAAAAAAAAAAA")

	directives := strings.Split(csp, "; ")
	var script, style string
	for _, d := range directives {
		if strings.HasPrefix(d, "script-src ") {
			script = d
		}
		if strings.HasPrefix(d, "style-src ") {
			style = d
		}
	}

	assert.Contains(t, script, "'nonce-AAAAAAAAAAAA'")
	assert.Contains(t, style, "'nonce-AAAAAAAAAAAA'")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
}

func TestContentSecurityPolicyWithoutNonce(t *testing.T) {
	csp := middleware.ContentSecurityPolicy("")

	assert.NotContains(t, csp, "nonce-")
	assert.Contains(t, csp, "script-src 'self'")
}

func TestSecureHeadersStatic(t *testing.T) {
	h := middleware.SecureHeaders(false)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))

	// В dev не навязываем HSTS
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecureHeadersHSTSInProduction(t *testing.T) {
	h := middleware.SecureHeaders(true)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	sts := rec.Header().Get("Strict-Transport-Security")
	require.NotEmpty(t, sts)
	assert.Contains(t, sts, "max-age=31536000")
	assert.Contains(t, sts, "includeSubDomains")
}
