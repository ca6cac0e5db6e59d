package nonce

// encode.go — детерминированное кодирование энтропии в печатный токен.

import (
	"encoding/base64"
	"fmt"
)

const (
	// EntropyLen — длина буфера энтропии в байтах. Кратна 3, поэтому base64
	// даёт строку без символов набивки ('=').
	EntropyLen = 9

	// EncodedLen — длина готового nonce: 4 символа на каждые 3 байта.
	EncodedLen = 12
)

// Encode кодирует ровно EntropyLen байт в строку из EncodedLen печатных
// символов стандартного base64-алфавита. Детерминированно: одинаковый вход
// всегда даёт одинаковый выход.
//
// Длина входа — предусловие: нарушение означает ошибку программиста,
// а не ситуацию времени выполнения, поэтому паника.
func Encode(b []byte) string {
	if len(b) != EntropyLen {
		panic(fmt.Sprintf("nonce: Encode ожидает %d байт, получено %d", EntropyLen, len(b)))
	}
	return base64.StdEncoding.EncodeToString(b)
}

// Decode — обратное преобразование: восстанавливает исходные EntropyLen байт.
// Возвращает ошибку для строк неверной длины или с символами вне алфавита.
func Decode(s string) ([]byte, error) {
	if len(s) != EncodedLen {
		return nil, fmt.Errorf("nonce: ожидается строка из %d символов, получено %d", EncodedLen, len(s))
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("nonce: некорректная base64-строка: %w", err)
	}
	// Строка с набивкой ('=') даёт меньше EntropyLen байт — это не nonce
	if len(b) != EntropyLen {
		return nil, fmt.Errorf("nonce: декодировано %d байт вместо %d", len(b), EntropyLen)
	}
	return b, nil
}
