package handler

// about.go

import (
	"net/http"

	"cspApp/internal/core"
	"cspApp/internal/view"
)

// About — страница "О приложении".
func About(tpl *view.Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tpl.Render(w, r, "about", "О приложении", nil); err != nil {
			core.Fail(w, r, err)
		}
	}
}
