package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cspApp/internal/request"
)

func TestNewRoot(t *testing.T) {
	req := request.New()

	assert.Nil(t, req.Prev)
	require.NotNil(t, req.Env)
	assert.Empty(t, req.Env)
}

func TestNewChildPropagatesEnv(t *testing.T) {
	parent := request.New()
	parent.Env["CSP_NONCE"] = "AAAAAAAAAAAA"
	parent.Env["CUSTOM"] = "value"

	child := request.NewChild(parent)

	assert.Same(t, parent, child.Prev)
	assert.Equal(t, "AAAAAAAAAAAA", child.Env["REDIRECT_CSP_NONCE"])
	assert.Equal(t, "value", child.Env["REDIRECT_CUSTOM"])

	// Непрефиксованных родительских ключей у потомка нет
	_, ok := child.Env["CSP_NONCE"]
	assert.False(t, ok)
}

func TestNewChildOwnsEnv(t *testing.T) {
	parent := request.New()
	parent.Env["CSP_NONCE"] = "AAAAAAAAAAAA"

	child := request.NewChild(parent)
	child.Env["CSP_NONCE"] = "BBBBBBBBBBBB"

	// Запись в окружение потомка не трогает родителя
	assert.Equal(t, "AAAAAAAAAAAA", parent.Env["CSP_NONCE"])
}

// Второй редирект: ключи родителя получают префикс повторно.
func TestNewChildTwice(t *testing.T) {
	root := request.New()
	root.Env["CSP_NONCE"] = "AAAAAAAAAAAA"

	first := request.NewChild(root)
	first.Env["CSP_NONCE"] = first.Env["REDIRECT_CSP_NONCE"]

	second := request.NewChild(first)
	assert.Equal(t, "AAAAAAAAAAAA", second.Env["REDIRECT_CSP_NONCE"])
	assert.Equal(t, "AAAAAAAAAAAA", second.Env["REDIRECT_REDIRECT_CSP_NONCE"])
}
