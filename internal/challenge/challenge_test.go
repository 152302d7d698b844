package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestVerifier(t *testing.T, ttl time.Duration) *Verifier {
	t.Helper()
	v := New(ttl)
	v.intn = func(int) int { return 2 }
	t.Cleanup(v.Stop)
	return v
}

func TestCreate(t *testing.T) {
	v := newTestVerifier(t, time.Minute)
	token, prompt := v.Create()

	assert.NotEmpty(t, token)
	assert.Equal(t, "What is 3 + 3?", prompt)
	assert.Equal(t, 1, v.Pending())

	other, _ := v.Create()
	assert.NotEqual(t, token, other)
}

func TestVerify(t *testing.T) {
	t.Run("correct answer", func(t *testing.T) {
		v := newTestVerifier(t, time.Minute)
		token, _ := v.Create()
		assert.True(t, v.Verify(token, " 6 "))
	})

	t.Run("wrong answer", func(t *testing.T) {
		v := newTestVerifier(t, time.Minute)
		token, _ := v.Create()
		assert.False(t, v.Verify(token, "7"))
	})

	t.Run("unknown token", func(t *testing.T) {
		v := newTestVerifier(t, time.Minute)
		assert.False(t, v.Verify("nope", "6"))
		assert.False(t, v.Verify("", "6"))
	})
}

func TestVerifyIsSingleUse(t *testing.T) {
	v := newTestVerifier(t, time.Minute)

	token, _ := v.Create()
	assert.True(t, v.Verify(token, "6"))
	assert.False(t, v.Verify(token, "6"))

	token, _ = v.Create()
	assert.False(t, v.Verify(token, "5"))
	assert.False(t, v.Verify(token, "6"), "a failed attempt consumes the challenge")
	assert.Zero(t, v.Pending())
}

func TestVerifyExpired(t *testing.T) {
	v := newTestVerifier(t, 20*time.Millisecond)
	token, _ := v.Create()
	time.Sleep(60 * time.Millisecond)
	assert.False(t, v.Verify(token, "6"))
}

func TestNewDefaultsTTL(t *testing.T) {
	v := New(0)
	t.Cleanup(v.Stop)
	token, prompt := v.Create()
	assert.NotEmpty(t, token)
	assert.Contains(t, prompt, "What is")
}
