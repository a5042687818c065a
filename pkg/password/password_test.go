package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_NeverEqualsPlaintext(t *testing.T) {
	digest, err := Hash("supersecret123")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret123", digest)
	assert.NotEmpty(t, digest)
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("supersecret123")
	require.NoError(t, err)
	second, err := Hash("supersecret123")
	require.NoError(t, err)

	// 随机盐：同一明文两次哈希结果不同，但都能校验通过
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("supersecret123", first))
	assert.True(t, Verify("supersecret123", second))
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := Hash("supersecret123")
	require.NoError(t, err)
	assert.False(t, Verify("wrongpassword", digest))
	assert.False(t, Verify("", digest))
}
