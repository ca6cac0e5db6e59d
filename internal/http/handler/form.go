package handler

// form.go

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"cspApp/internal/core"
	"cspApp/internal/view"
)

// FormData — поля формы обратной связи.
type FormData struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=2000"`
}

// FormView — данные страницы формы.
type FormView struct {
	OK     bool
	Form   FormData
	Errors map[string]string
}

// Валидатор и санитайзер общие для всех запросов (OWASP A03: Injection).
var (
	validate  = validator.New()
	sanitizer = bluemonday.UGCPolicy()
)

// FormIndex рендерит форму (GET).
func FormIndex(tpl *view.Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := FormView{
			OK:     r.URL.Query().Get("ok") == "1",
			Form:   FormData{},
			Errors: map[string]string{},
		}
		if err := tpl.Render(w, r, "form", "Форма", data); err != nil {
			core.Fail(w, r, err)
		}
	}
}

// FormSubmit обрабатывает отправку формы (POST).
func FormSubmit(tpl *view.Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB (OWASP A05)
		if err := r.ParseForm(); err != nil {
			core.Fail(w, r, core.BadRequest("некорректное тело запроса", err))
			return
		}

		f := FormData{
			Name:    sanitizer.Sanitize(strings.TrimSpace(r.Form.Get("name"))),
			Email:   sanitizer.Sanitize(strings.TrimSpace(r.Form.Get("email"))),
			Message: sanitizer.Sanitize(strings.TrimSpace(r.Form.Get("message"))),
		}

		errs := validateForm(f)
		if len(errs) > 0 {
			core.LogError("Ошибка валидации формы", map[string]interface{}{"errors": errs})
			data := FormView{Form: f, Errors: errs}
			if err := tpl.Render(w, r, "form", "Форма", data); err != nil {
				core.Fail(w, r, err)
			}
			return
		}

		core.LogInfo("Форма принята", map[string]interface{}{"name": f.Name, "email": f.Email})
		http.Redirect(w, r, "/form?ok=1", http.StatusSeeOther)
	}
}

// validateForm переводит ошибки валидатора в карту "поле -> текст".
func validateForm(f FormData) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(f)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		core.LogError("Неожиданная ошибка валидации", map[string]interface{}{"error": err.Error()})
		errs["form"] = "Ошибка валидации"
		return errs
	}

	for _, e := range verrs {
		switch e.Field() {
		case "Name":
			switch e.Tag() {
			case "required":
				errs["name"] = "Укажите имя"
			case "min":
				errs["name"] = "Имя должно быть не короче 2 символов"
			default:
				errs["name"] = "Слишком длинное имя (макс. 100)"
			}
		case "Email":
			if e.Tag() == "required" {
				errs["email"] = "Укажите email"
			} else {
				errs["email"] = "Введите корректный email"
			}
		case "Message":
			if e.Tag() == "required" {
				errs["message"] = "Напишите сообщение"
			} else {
				errs["message"] = "Слишком длинное сообщение (макс. 2000)"
			}
		}
	}
	return errs
}
