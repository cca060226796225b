package redis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	myRedis "github.com/Guyuepp/errorpool/internal/repository/redis"
)

func TestBloomAddAndExists(t *testing.T) {
	_, client := newMiniRedis(t)
	bloom := myRedis.NewRedisBloomRepo(client, 1<<16)
	ctx := context.TODO()

	// nothing loaded yet: cannot rule anything out
	ok, err := bloom.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, bloom.BulkAdd(ctx, []int64{1, 2, 3}))
	require.NoError(t, bloom.Add(ctx, 10))

	for _, id := range []int64{1, 2, 3, 10} {
		ok, err := bloom.Exists(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok, "id %d", id)
	}

	misses := 0
	for id := int64(1000); id < 1100; id++ {
		ok, err := bloom.Exists(ctx, id)
		require.NoError(t, err)
		if !ok {
			misses++
		}
	}
	assert.Greater(t, misses, 90)
}

func TestBloomExistsRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectExists(myRedis.KeyArticleBloom).SetErr(errors.New("redis down"))

	bloom := myRedis.NewRedisBloomRepo(client, 1<<16)
	_, err := bloom.Exists(context.TODO(), 1)
	assert.Error(t, err)
}

func TestBloomBulkAddEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	bloom := myRedis.NewRedisBloomRepo(client, 1<<16)

	assert.NoError(t, bloom.BulkAdd(context.TODO(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomAddAfterEviction(t *testing.T) {
	mr, client := newMiniRedis(t)
	bloom := myRedis.NewRedisBloomRepo(client, 1<<16)
	ctx := context.TODO()

	require.NoError(t, bloom.BulkAdd(ctx, []int64{1, 2, 3}))
	mr.Del(myRedis.KeyArticleBloom)
	require.NoError(t, bloom.Add(ctx, 4))

	assert.False(t, mr.Exists(myRedis.KeyArticleBloom))
	for _, id := range []int64{1, 2, 3, 4} {
		ok, err := bloom.Exists(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok, "id %d", id)
	}
}

func TestBloomReset(t *testing.T) {
	mr, client := newMiniRedis(t)
	bloom := myRedis.NewRedisBloomRepo(client, 1<<16)
	ctx := context.TODO()

	require.NoError(t, bloom.BulkAdd(ctx, []int64{1}))
	require.NoError(t, bloom.Reset(ctx))
	assert.False(t, mr.Exists(myRedis.KeyArticleBloom))

	ok, err := bloom.Exists(ctx, 999)
	require.NoError(t, err)
	assert.True(t, ok)
}
