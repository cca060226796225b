package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/errorpool/domain"
)

const (
	KeyLikeLock = "lock:like:%d:%d"

	defaultLockTTL   = 5 * time.Second
	defaultLockWait  = 2 * time.Second
	lockPollInterval = 20 * time.Millisecond
)

// 只有持有者才能释放锁
var unlockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

type likeLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

var _ domain.LikeLocker = (*likeLocker)(nil)

// NewLikeLocker 创建基于 redis 的 (文章, 用户) 粒度互斥锁.
// ttl bounds how long a crashed holder blocks the key, wait bounds how long Lock polls.
func NewLikeLocker(client *redis.Client, ttl, wait time.Duration) *likeLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &likeLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
	}
}

func (l *likeLocker) Lock(ctx context.Context, like domain.UserLike) (func(), error) {
	key := fmt.Sprintf(KeyLikeLock, like.ArticleID, like.UserID)
	token := uuid.NewString()

	deadline := time.NewTimer(l.wait)
	defer deadline.Stop()
	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// 用独立的 ctx 释放, 请求 ctx 可能已经超时
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := unlockScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
					logrus.Warnf("failed to release like lock %s: %v", key, err)
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("%w: like lock %s is busy", domain.ErrConflict, key)
		case <-ticker.C:
		}
	}
}
