package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDedup tracks which slug/target pairs have already been persisted, so
// a re-run on the same topic never publishes twice. This is an explicit
// uniqueness key checked before insert, not a search of stored content.
type RedisDedup struct {
	rdb *redis.Client
}

func NewRedisDedup(rdb *redis.Client) *RedisDedup {
	return &RedisDedup{rdb: rdb}
}

func slugKey(target, slug string) string {
	return fmt.Sprintf("content:slug:%s:%s", target, slug)
}

// SlugSeen reports whether the slug/target pair was persisted before.
func (d *RedisDedup) SlugSeen(ctx context.Context, target, slug string) (bool, error) {
	_, err := d.rdb.Get(ctx, slugKey(target, slug)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkSlug records a persisted slug/target pair. Keys expire after 90 days;
// topics rarely resurface later, and the content collection remains the
// durable record.
func (d *RedisDedup) MarkSlug(ctx context.Context, target, slug string) error {
	return d.rdb.Set(ctx, slugKey(target, slug), "1", 90*24*time.Hour).Err()
}
