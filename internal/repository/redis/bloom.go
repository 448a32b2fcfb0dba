package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/skinnydoo/conduit/domain"
)

const (
	KeySlugBloom = "bloom:article:slugs"
)

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

func (r *redisBloomRepo) Add(ctx context.Context, slug domain.Slug) error {
	offsets := r.getOffset(slug)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.SetBit(ctx, KeySlugBloom, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, slug domain.Slug) (bool, error) {
	offsets := r.getOffset(slug)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.GetBit(ctx, KeySlugBloom, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, slugs []domain.Slug) error {
	if len(slugs) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, slug := range slugs {
		offsets := r.getOffset(slug)
		for _, offset := range offsets {
			pipe.SetBit(ctx, KeySlugBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// getOffset derives k=3 bit positions from the slug.
func (r *redisBloomRepo) getOffset(slug domain.Slug) []uint64 {
	data := []byte(slug.String())
	offsets := make([]uint64, 3)

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}
