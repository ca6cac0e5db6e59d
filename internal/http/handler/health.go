package handler

// health.go

import (
	"net/http"

	"cspApp/internal/core"
)

// Health — healthcheck для мониторинга.
func Health(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
