package nonce

// resolve.go — выбор между наследованием и генерацией nonce для цепочки
// запросов: один логический запрос предъявляет одно и то же значение на
// каждом шаге внутренних редиректов.

import (
	"cspApp/internal/request"
)

// Ключи окружения запроса — единственный контракт с последующими стадиями
// обработки (рендеринг заголовка CSP и инлайн-скриптов).
const (
	// EnvKey — ключ, под которым готовый nonce публикуется в окружении.
	EnvKey = "CSP_NONCE"

	// InheritedKey — ключ, под которым потомок видит значение родителя
	// после внутреннего редиректа.
	InheritedKey = request.RedirectPrefix + EnvKey
)

// Resolver вычисляет nonce для контекста запроса: не более одного раза на
// контекст, лениво, без повторных попыток.
type Resolver struct {
	src Source
}

// NewResolver создаёт резолвер поверх выбранного источника энтропии.
func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve возвращает nonce для req и признак его наличия.
//
// Порядок:
//  1. Значение уже вычислено для этого контекста — вернуть его же.
//  2. Контекст — продолжение цепочки (есть родитель) и родительское значение
//     унаследовано в окружении — скопировать дословно, энтропия не тратится.
//  3. Иначе — свежие EntropyLen байт из источника, кодирование, публикация
//     под EnvKey.
//
// Сбой энтропии не фатален: ключ остаётся незаданным, возвращается
// ("", false), ошибка дальше не распространяется — nonce это улучшение,
// а не условие обслуживания запроса.
func (rs *Resolver) Resolve(req *request.Request) (string, bool) {
	if v, ok := req.Env[EnvKey]; ok {
		return v, true
	}

	if req.Prev != nil {
		if v, ok := req.Env[InheritedKey]; ok {
			req.Env[EnvKey] = v
			return v, true
		}
	}

	b, err := rs.src.RandomBytes(EntropyLen)
	if err != nil {
		return "", false
	}

	v := Encode(b)
	req.Env[EnvKey] = v
	return v, true
}
