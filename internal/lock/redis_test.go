package lock

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisLockerNilClient(t *testing.T) {
	assert.Nil(t, NewRedisLocker(nil))
}

func TestTryLockValidatesArguments(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLocker(client)
	require.NotNil(t, l)

	_, ok, err := l.TryLock(context.Background(), "", time.Second)
	assert.Error(t, err)
	assert.False(t, ok)

	_, ok, err = l.TryLock(context.Background(), CampaignKey(1), 0)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNilLockerTryLock(t *testing.T) {
	var l *RedisLocker
	_, ok, err := l.TryLock(context.Background(), CampaignKey(1), time.Second)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, l.Release(context.Background(), CampaignKey(1), "token"))
}

func TestReleaseWithoutTokenIsNoop(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLocker(client)

	assert.NoError(t, l.Release(context.Background(), CampaignKey(1), ""))
}

func TestCampaignKey(t *testing.T) {
	assert.Equal(t, "spendguard:campaign:42:tick", CampaignKey(42))
}
