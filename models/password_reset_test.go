package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetIsValid(t *testing.T) {
	// 未使用且未过期
	p := &PasswordReset{ExpiresAt: time.Now().Add(10 * time.Minute)}
	assert.True(t, p.IsValid())
	assert.False(t, p.IsExpired())

	// 已使用
	p.Used = true
	assert.False(t, p.IsValid())

	// 已过期
	expired := &PasswordReset{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, expired.IsExpired())
	assert.False(t, expired.IsValid())
}

func TestGenerateResetCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
		seen[code] = true
	}
	// 50 次生成不应全部相同
	assert.Greater(t, len(seen), 1)
}
