package core

// response.go

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ProblemDetail — тело ошибки по RFC 7807.
type ProblemDetail struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail"`
	Instance string            `json:"instance"`
	Code     string            `json:"code"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// JSON сериализует v клиенту с указанным статусом.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		LogError("Ошибка сериализации ответа", map[string]interface{}{"error": err.Error()})
	}
}

// Fail логирует ошибку и отвечает клиенту ProblemDetail-JSON. Внутренние
// подробности (Err) остаются в логе и не утекают в ответ.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	ae := From(err)

	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = "n/a"
		}
	}

	LogError("Ошибка запроса", map[string]interface{}{
		"request_id": reqID,
		"path":       r.URL.Path,
		"code":       ae.Code,
		"status":     ae.Status,
		"message":    ae.Message,
		"fields":     ae.Fields,
		"error":      ae.Err,
	})

	JSON(w, ae.Status, ProblemDetail{
		Type:     "/errors/" + ae.Code,
		Title:    http.StatusText(ae.Status),
		Status:   ae.Status,
		Detail:   ae.Message,
		Instance: "/errors/" + ae.Code,
		Code:     ae.Code,
		Fields:   ae.Fields,
	})
}
