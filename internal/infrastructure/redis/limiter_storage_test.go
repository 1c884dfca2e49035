package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) (*LimiterStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewLimiterStorage("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestLimiterStorage_SetGetDelete(t *testing.T) {
	s, mr := setupStorage(t)

	got, err := s.Get("127.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set("127.0.0.1", []byte("hits"), time.Minute))
	assert.True(t, mr.Exists(defaultPrefix+"127.0.0.1"))

	got, err = s.Get("127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("hits"), got)

	require.NoError(t, s.Delete("127.0.0.1"))
	got, err = s.Get("127.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLimiterStorage_Expira(t *testing.T) {
	s, mr := setupStorage(t)
	require.NoError(t, s.Set("ip", []byte("1"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := s.Get("ip")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLimiterStorage_ResetRespetaOtrasClaves(t *testing.T) {
	s, mr := setupStorage(t)
	require.NoError(t, mr.Set("otra:clave", "x"))
	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	require.NoError(t, s.Reset())
	assert.False(t, mr.Exists(defaultPrefix+"a"))
	assert.False(t, mr.Exists(defaultPrefix+"b"))
	assert.True(t, mr.Exists("otra:clave"))
}

func TestNewLimiterStorage_URLInvalida(t *testing.T) {
	_, err := NewLimiterStorage("://nope")
	assert.Error(t, err)
}
