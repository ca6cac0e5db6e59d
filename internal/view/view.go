package view

// view.go

import (
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"

	"cspApp/internal/core"
)

// Templates — разобранные шаблоны страниц.
type Templates struct {
	templates map[string]*template.Template
}

// PageData — унифицированная структура для всех шаблонов (OWASP A03, A07).
// Nonce пустой, если nonce для запроса недоступен: шаблоны обязаны
// не выводить атрибут nonce в этом случае.
type PageData struct {
	Title     string
	CSRFField template.HTML
	Nonce     string
	Data      interface{} // Кастомные данные страницы (например, FormView)
}

// New разбирает шаблоны из web/templates (OWASP A05).
func New() (*Templates, error) {
	layouts := []string{
		"web/templates/layouts/base.gohtml",
		"web/templates/partials/nav.gohtml",
		"web/templates/partials/footer.gohtml",
	}
	pages := map[string][]string{
		"home":     {"web/templates/pages/home.gohtml"},
		"about":    {"web/templates/pages/about.gohtml"},
		"form":     {"web/templates/pages/form.gohtml"},
		"notfound": {"web/templates/pages/404.gohtml"},
	}

	t := &Templates{templates: make(map[string]*template.Template)}
	for name, pageFiles := range pages {
		files := append(append([]string{}, layouts...), pageFiles...)
		tpl, err := template.ParseFiles(files...)
		if err != nil {
			return nil, err
		}
		t.templates[name] = tpl
	}
	return t, nil
}

// Render рендерит именованный шаблон с данными страницы. Статус нужно
// выставить до вызова (по умолчанию 200).
func (t *Templates) Render(w http.ResponseWriter, r *http.Request, templateName, title string, data interface{}) error {
	tpl, ok := t.templates[templateName]
	if !ok {
		return core.Internal("шаблон не найден: "+templateName, nil)
	}

	// Nonce берём из контекста; при сбое энтропии его там нет — страница
	// рендерится без атрибутов nonce
	nonce, _ := core.NonceFrom(r.Context().Value(core.CtxNonce))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tpl.ExecuteTemplate(w, "base", PageData{
		Title:     title,
		CSRFField: csrf.TemplateField(r),
		Nonce:     nonce,
		Data:      data,
	})
	if err != nil {
		core.LogError("Ошибка рендеринга шаблона", map[string]interface{}{
			"template": templateName,
			"error":    err.Error(),
		})
		return core.Internal("ошибка шаблона", err)
	}
	return nil
}
