package handler

// notfound.go

import (
	"net/http"

	"cspApp/internal/core"
	"cspApp/internal/view"
)

// NotFound — страница 404. Маршрутизатор направляет сюда неизвестные пути
// через внутренний редирект, поэтому страница видит тот же nonce, что и
// исходный запрос.
func NotFound(tpl *view.Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := tpl.Render(w, r, "notfound", "Страница не найдена", nil); err != nil {
			core.LogError("Ошибка рендеринга страницы 404", map[string]interface{}{"error": err.Error()})
		}
	}
}
