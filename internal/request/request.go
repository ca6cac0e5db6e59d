package request

// request.go — модель цепочки внутренних редиректов.
//
// Один логический запрос клиента может переобрабатываться сервером внутренне
// (без нового сетевого обращения). Каждая переобработка — новый контекст,
// связанный с предыдущим не-владеющей ссылкой Prev. Окружение родителя
// становится видно потомку под ключами с префиксом REDIRECT_.

// RedirectPrefix — префикс, под которым окружение родителя копируется потомку
// при внутреннем редиректе.
const RedirectPrefix = "REDIRECT_"

// Request — контекст одной обработки запроса: ссылка на предыдущий контекст
// цепочки и собственное изменяемое окружение "ключ → значение".
type Request struct {
	Prev *Request          // предыдущий контекст цепочки; nil для корневого запроса
	Env  map[string]string // окружение запроса, читается последующими стадиями
}

// New создаёт корневой контекст (первая обработка запроса, без родителя).
func New() *Request {
	return &Request{Env: make(map[string]string)}
}

// NewChild создаёт контекст внутреннего редиректа: родитель становится Prev,
// а каждая переменная его окружения копируется потомку под ключом
// RedirectPrefix+ключ. Собственное окружение потомка изначально пустое
// (кроме унаследованных REDIRECT_-ключей).
//
// parent не должен быть nil — потомок без родителя не существует.
func NewChild(parent *Request) *Request {
	child := &Request{
		Prev: parent,
		Env:  make(map[string]string, len(parent.Env)),
	}
	for k, v := range parent.Env {
		child.Env[RedirectPrefix+k] = v
	}
	return child
}
