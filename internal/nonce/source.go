package nonce

// source.go — источники энтропии (OWASP A02: Cryptographic Failures).
//
// Два варианта с разными гарантиями безопасности. Выбор делается один раз
// при сборке приложения (по конфигурации), никогда — по типу во время
// выполнения: свойства каждого пути остаются явными и тестируемыми порознь.

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	randv2 "math/rand/v2"
	"sync"
	"time"
)

// ErrEntropyUnavailable — единственный вид ошибки источника: платформенный
// провайдер случайности не удалось открыть или опросить.
var ErrEntropyUnavailable = errors.New("источник энтропии недоступен")

// Source выдаёт ровно n байт случайности либо ошибку, оборачивающую
// ErrEntropyUnavailable. Никакого разделяемого изменяемого состояния между
// вызовами; всё, что открыто для вызова, освобождается до возврата.
type Source interface {
	RandomBytes(n int) ([]byte, error)
}

// CryptoSource — основной источник: криптографический ГСЧ операционной
// системы. Reader подменяется в тестах.
type CryptoSource struct {
	Reader io.Reader
}

// NewCryptoSource возвращает источник поверх crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{Reader: rand.Reader}
}

// RandomBytes читает ровно n байт. Неполное чтение — тоже отказ провайдера.
func (s *CryptoSource) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b, nil
}

// ClockSource — резервный источник для платформ без криптографического ГСЧ:
// генератор общего назначения, засеянный показанием часов высокого
// разрешения в момент создания.
//
// НЕ является криптостойким. Затравка из времени суток предсказуема,
// поэтому этот режим — осознанное снижение безопасности, а не равноценная
// замена CryptoSource.
type ClockSource struct {
	mu  sync.Mutex
	rng *randv2.ChaCha8
}

// NewClockSource засевает генератор от системных часов.
func NewClockSource() *ClockSource {
	var seed [32]byte
	now := time.Now()
	binary.LittleEndian.PutUint64(seed[0:8], uint64(now.UnixNano()))
	binary.LittleEndian.PutUint64(seed[8:16], uint64(now.Unix()))
	binary.LittleEndian.PutUint64(seed[16:24], uint64(now.UnixNano())^uint64(now.Unix()))
	return &ClockSource{rng: randv2.NewChaCha8(seed)}
}

// RandomBytes заполняет все n байт независимыми выборками генератора.
func (s *ClockSource) RandomBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, n)
	if _, err := s.rng.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b, nil
}
