package handler

// debug.go

import (
	"net/http"

	"cspApp/internal/core"
)

// nonceInfo — диагностика состояния nonce текущего запроса.
type nonceInfo struct {
	Present bool   `json:"present"`
	Length  int    `json:"length"`
	Nonce   string `json:"nonce,omitempty"`
}

// DebugNonce отдаёт состояние CSP nonce для текущего запроса. Полезно для
// проверки деградации: при сбое энтропии present=false, запрос при этом
// обслуживается как обычно.
func DebugNonce(w http.ResponseWriter, r *http.Request) {
	nonce, ok := core.NonceFrom(r.Context().Value(core.CtxNonce))
	core.JSON(w, http.StatusOK, nonceInfo{
		Present: ok,
		Length:  len(nonce),
		Nonce:   nonce,
	})
}
