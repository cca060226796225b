package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/errorpool/domain"
)

const (
	KeyArticleBloom = "bloom:article:ids"

	bloomHashes = 3
)

// 过滤器 key 不存在时不写入: 被淘汰后重建一个只含新 id 的过滤器会让旧文章全部误判为不存在
var addIfLoadedScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return 0
	end
	for i = 1, #ARGV do
		redis.call('SETBIT', KEYS[1], ARGV[i], 1)
	end
	return 1
`)

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

// Add sets the bits of id only while the filter is loaded.
// A missing filter keeps answering true until InitBloomFilter rebuilds it.
func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	offsets := r.getOffset(id)
	args := make([]any, len(offsets))
	for i, offset := range offsets {
		args[i] = offset
	}
	return addIfLoadedScript.Run(ctx, r.client, []string{KeyArticleBloom}, args...).Err()
}

// Reset drops the filter so Exists fails open
func (r *redisBloomRepo) Reset(ctx context.Context) error {
	return r.client.Del(ctx, KeyArticleBloom).Err()
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	offsets := r.getOffset(id)
	pipe := r.client.Pipeline()
	existsCmd := pipe.Exists(ctx, KeyArticleBloom)
	bitCmds := make([]*redis.IntCmd, 0, len(offsets))
	for _, offset := range offsets {
		bitCmds = append(bitCmds, pipe.GetBit(ctx, KeyArticleBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	// 过滤器还没建立(或被淘汰)时不能断言不存在
	if existsCmd.Val() == 0 {
		return true, nil
	}
	for _, cmd := range bitCmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) getOffset(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, bloomHashes)

	// Hash 1: CRC32
	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	// Hash 2: FNV64
	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	// Hash 3: 线性混合
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, KeyArticleBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
