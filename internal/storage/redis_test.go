package storage

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStorage(client), mr
}

func TestRedisStorage_Roundtrip(t *testing.T) {
	s, _ := newRedisStore(t)

	_, err := s.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(KeyAccessToken, "tok"))
	v, err := s.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Delete(KeyAccessToken))
	_, err = s.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(KeyAccessToken), ErrNotFound)
}

func TestRedisStorage_KeyPrefixAndTTL(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, s.Set(KeyAccessToken, "tok"))

	key := "quickbird:session:" + KeyAccessToken
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(key), "session entries expire with the web client's cookie")
}

func TestRedisStorage_ExpiredEntryIsGone(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, s.Set(KeyAccessToken, "tok"))

	mr.FastForward(7*24*time.Hour + time.Minute)

	_, err := s.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)
}
