package specialist

import (
	"context"
	"encoding/json"
	"time"

	"hrmanager/models"

	"github.com/go-redis/redis/v8"
)

const (
	specialistsCacheKey = "specialists:all"
	specialistsCacheTTL = 10 * time.Minute
)

// SpecialistCache caches the full specialist listing. A miss is reported as
// (nil, redis.Nil)-style error from the underlying client; callers fall back
// to the repository.
type SpecialistCache interface {
	Get(ctx context.Context) ([]models.Specialist, error)
	Set(ctx context.Context, specialists []models.Specialist) error
	Invalidate(ctx context.Context) error
}

// RedisSpecialistCache implements SpecialistCache on a redis client.
type RedisSpecialistCache struct {
	client *redis.Client
}

func NewRedisSpecialistCache(client *redis.Client) SpecialistCache {
	return &RedisSpecialistCache{client: client}
}

func (c *RedisSpecialistCache) Get(ctx context.Context) ([]models.Specialist, error) {
	val, err := c.client.Get(ctx, specialistsCacheKey).Result()
	if err != nil {
		return nil, err
	}
	var specialists []models.Specialist
	if err := json.Unmarshal([]byte(val), &specialists); err != nil {
		return nil, err
	}
	return specialists, nil
}

func (c *RedisSpecialistCache) Set(ctx context.Context, specialists []models.Specialist) error {
	data, err := json.Marshal(specialists)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, specialistsCacheKey, data, specialistsCacheTTL).Err()
}

func (c *RedisSpecialistCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, specialistsCacheKey).Err()
}
