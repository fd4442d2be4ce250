package otp_test

import (
	"strconv"
	"testing"
	"time"

	"kodeks24/internal/otp"

	"github.com/stretchr/testify/assert"
)

func TestCacheStorePutGetDelete(t *testing.T) {
	store := otp.NewCacheStore(time.Minute)

	_, ok := store.Get("a@example.com")
	assert.False(t, ok)

	reg := otp.PendingRegistration{Username: "alice", PasswordHash: "hash", Code: "123456"}
	store.Put("a@example.com", reg)

	got, ok := store.Get("a@example.com")
	assert.True(t, ok)
	assert.Equal(t, reg, got)

	store.Delete("a@example.com")
	_, ok = store.Get("a@example.com")
	assert.False(t, ok)
}

func TestCacheStorePutOverwrites(t *testing.T) {
	store := otp.NewCacheStore(time.Minute)

	store.Put("a@example.com", otp.PendingRegistration{Username: "alice", Code: "111111"})
	store.Put("a@example.com", otp.PendingRegistration{Username: "alice", Code: "222222"})

	got, ok := store.Get("a@example.com")
	assert.True(t, ok)
	assert.Equal(t, "222222", got.Code)
}

func TestCacheStoreExpiry(t *testing.T) {
	store := otp.NewCacheStore(30 * time.Millisecond)

	store.Put("a@example.com", otp.PendingRegistration{Username: "alice", Code: "123456"})
	_, ok := store.Get("a@example.com")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = store.Get("a@example.com")
	assert.False(t, ok)
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := otp.GenerateCode()
		assert.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.Less(t, n, 600000)
	}
}
