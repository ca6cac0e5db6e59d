package handler

// home.go

import (
	"net/http"

	"cspApp/internal/core"
	"cspApp/internal/view"
)

// Home возвращает обработчик главной страницы. Страница содержит
// инлайн-скрипт, авторизованный через nonce из заголовка CSP.
func Home(tpl *view.Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tpl.Render(w, r, "home", "Главная", nil); err != nil {
			core.Fail(w, r, err)
		}
	}
}
