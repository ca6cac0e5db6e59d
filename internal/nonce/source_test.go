package nonce_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cspApp/internal/nonce"
)

// errReader всегда отказывает — имитация недоступного провайдера.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("провайдер закрыт")
}

// shortReader отдаёт меньше запрошенного и обрывается.
type shortReader struct{ left int }

func (r *shortReader) Read(p []byte) (int, error) {
	if r.left == 0 {
		return 0, errors.New("энтропия исчерпана")
	}
	n := r.left
	if n > len(p) {
		n = len(p)
	}
	r.left -= n
	return n, nil
}

func TestCryptoSourceReturnsExactly(t *testing.T) {
	src := nonce.NewCryptoSource()

	b, err := src.RandomBytes(nonce.EntropyLen)
	require.NoError(t, err)
	assert.Len(t, b, nonce.EntropyLen)
}

func TestCryptoSourceIndependentCalls(t *testing.T) {
	src := nonce.NewCryptoSource()

	a, err := src.RandomBytes(nonce.EntropyLen)
	require.NoError(t, err)
	b, err := src.RandomBytes(nonce.EntropyLen)
	require.NoError(t, err)

	// 2^-72 — коллизия означала бы сломанный источник
	assert.False(t, bytes.Equal(a, b))
}

func TestCryptoSourceUnavailable(t *testing.T) {
	src := &nonce.CryptoSource{Reader: errReader{}}

	_, err := src.RandomBytes(nonce.EntropyLen)
	require.Error(t, err)
	assert.ErrorIs(t, err, nonce.ErrEntropyUnavailable)
}

func TestCryptoSourceShortRead(t *testing.T) {
	src := &nonce.CryptoSource{Reader: &shortReader{left: 4}}

	_, err := src.RandomBytes(nonce.EntropyLen)
	assert.ErrorIs(t, err, nonce.ErrEntropyUnavailable)
}

func TestClockSourceFillsAllBytes(t *testing.T) {
	src := nonce.NewClockSource()

	a, err := src.RandomBytes(nonce.EntropyLen)
	require.NoError(t, err)
	assert.Len(t, a, nonce.EntropyLen)

	b, err := src.RandomBytes(nonce.EntropyLen)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b), "последовательные выборки не должны совпадать")
}
