package nonce_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cspApp/internal/nonce"
	"cspApp/internal/request"
)

// countingSource считает обращения к нижележащему источнику.
type countingSource struct {
	src   nonce.Source
	calls int
}

func (c *countingSource) RandomBytes(n int) ([]byte, error) {
	c.calls++
	return c.src.RandomBytes(n)
}

// failingSource имитирует недоступную энтропию.
type failingSource struct{}

func (failingSource) RandomBytes(int) ([]byte, error) {
	return nil, fmt.Errorf("%w: провайдер закрыт", nonce.ErrEntropyUnavailable)
}

func TestResolveGeneratesForRoot(t *testing.T) {
	rs := nonce.NewResolver(nonce.NewCryptoSource())
	req := request.New()

	v, ok := rs.Resolve(req)
	require.True(t, ok)
	assert.Len(t, v, nonce.EncodedLen)
	assert.Regexp(t, alphabet, v)
	assert.Equal(t, v, req.Env[nonce.EnvKey], "значение публикуется в окружении")
}

func TestResolveAtMostOncePerContext(t *testing.T) {
	src := &countingSource{src: nonce.NewCryptoSource()}
	rs := nonce.NewResolver(src)
	req := request.New()

	first, ok := rs.Resolve(req)
	require.True(t, ok)
	second, ok := rs.Resolve(req)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls, "повторный вызов не тратит энтропию")
}

func TestResolveInheritsFromParent(t *testing.T) {
	src := &countingSource{src: nonce.NewCryptoSource()}
	rs := nonce.NewResolver(src)

	root := request.New()
	rootNonce, ok := rs.Resolve(root)
	require.True(t, ok)

	child := request.NewChild(root)
	require.Equal(t, rootNonce, child.Env[nonce.InheritedKey])

	childNonce, ok := rs.Resolve(child)
	require.True(t, ok)
	assert.Equal(t, rootNonce, childNonce, "потомок видит то же значение дословно")
	assert.Equal(t, 1, src.calls, "наследование не тратит энтропию")
}

// Синтетический потомок: значение подложено в окружение напрямую, без
// вычисления у родителя.
func TestResolveSyntheticChild(t *testing.T) {
	src := &countingSource{src: nonce.NewCryptoSource()}
	rs := nonce.NewResolver(src)

	child := request.NewChild(request.New())
	child.Env[nonce.InheritedKey] = "AAAAAAAAAAAA"

	v, ok := rs.Resolve(child)
	require.True(t, ok)
	assert.Equal(t, "AAAAAAAAAAAA", v)
	assert.Equal(t, 0, src.calls)
}

func TestResolveChainStability(t *testing.T) {
	rs := nonce.NewResolver(nonce.NewCryptoSource())

	root := request.New()
	want, ok := rs.Resolve(root)
	require.True(t, ok)

	// Три шага внутренних редиректов — значение одно на всей цепочке
	cur := root
	for hop := 0; hop < 3; hop++ {
		cur = request.NewChild(cur)
		got, ok := rs.Resolve(cur)
		require.True(t, ok, "шаг %d", hop)
		assert.Equal(t, want, got, "шаг %d", hop)
	}
}

// Родитель есть, но значение не унаследовано (у родителя nonce не был
// вычислен) — потомок генерирует свежее значение.
func TestResolveChildWithoutInheritedValue(t *testing.T) {
	src := &countingSource{src: nonce.NewCryptoSource()}
	rs := nonce.NewResolver(src)

	child := request.NewChild(request.New())

	v, ok := rs.Resolve(child)
	require.True(t, ok)
	assert.Len(t, v, nonce.EncodedLen)
	assert.Equal(t, 1, src.calls)
}

func TestResolveEntropyFailureLeavesUnset(t *testing.T) {
	rs := nonce.NewResolver(failingSource{})
	req := request.New()

	v, ok := rs.Resolve(req)
	assert.False(t, ok)
	assert.Empty(t, v)

	_, present := req.Env[nonce.EnvKey]
	assert.False(t, present, "при сбое энтропии ключ остаётся незаданным")
}

// Сбой у родителя не фатален и для потомка: потомок пробует сгенерировать сам.
func TestResolveChildAfterParentFailure(t *testing.T) {
	failing := nonce.NewResolver(failingSource{})
	working := nonce.NewResolver(nonce.NewCryptoSource())

	root := request.New()
	_, ok := failing.Resolve(root)
	require.False(t, ok)

	child := request.NewChild(root)
	v, ok := working.Resolve(child)
	require.True(t, ok)
	assert.Len(t, v, nonce.EncodedLen)
}

func TestResolveStatisticalUniqueness(t *testing.T) {
	rs := nonce.NewResolver(nonce.NewCryptoSource())

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v, ok := rs.Resolve(request.New())
		require.True(t, ok)
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, n, "независимые запросы дают различные значения")
}
