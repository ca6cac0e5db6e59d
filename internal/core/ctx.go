package core

// ctx.go

// CtxKey — тип ключей контекста (не строка, чтобы избежать коллизий).
type CtxKey string

// CtxNonce — ключ, под которым middleware кладёт CSP nonce в request.Context.
// Значение присутствует только если nonce был успешно вычислен или
// унаследован; при сбое энтропии ключа в контексте нет.
const CtxNonce CtxKey = "nonce"

// NonceFrom извлекает nonce из значения контекста. Второй результат false,
// если nonce для запроса недоступен — вызывающий код обязан деградировать
// корректно (например, не выводить атрибут nonce).
func NonceFrom(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
