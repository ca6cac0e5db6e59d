package core

// errors.go

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError — ошибка приложения с машинным кодом, HTTP-статусом и
// дополнительной информацией (OWASP A05: Security Misconfiguration).
type AppError struct {
	Code    string            // Машинный код ошибки (например, "validation", "not_found")
	Status  int               // HTTP-статус для ответа клиенту
	Message string            // Сообщение для клиента
	Err     error             // Внутренняя ошибка (если есть)
	Fields  map[string]string // Поле -> текст ошибки (для валидации)
}

// Error возвращает строковое представление ошибки.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Code, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap возвращает вложенную ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal — внутренняя серверная ошибка (HTTP 500).
func Internal(msg string, err error) *AppError {
	return &AppError{Code: "internal", Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// BadRequest — некорректный запрос клиента (HTTP 400).
func BadRequest(msg string, err error) *AppError {
	return &AppError{Code: "bad_request", Status: http.StatusBadRequest, Message: msg, Err: err}
}

// NotFound (HTTP 404).
func NotFound(msg string) *AppError {
	return &AppError{Code: "not_found", Status: http.StatusNotFound, Message: msg}
}

// Forbidden (HTTP 403).
func Forbidden(msg string) *AppError {
	return &AppError{Code: "forbidden", Status: http.StatusForbidden, Message: msg}
}

// Validation — ошибка валидации формы с картой "поле -> текст" (HTTP 422).
func Validation(fields map[string]string) *AppError {
	return &AppError{Code: "validation", Status: http.StatusUnprocessableEntity, Message: "ошибка валидации", Fields: fields}
}

// From преобразует произвольную ошибку в AppError; неизвестная ошибка
// становится Internal (OWASP A09: Security Logging and Monitoring Failures).
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	if err == nil {
		return nil
	}
	return Internal("внутренняя ошибка", err)
}
