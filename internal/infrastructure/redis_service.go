package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisService keeps a best-effort record of issued session tokens. It is
// bookkeeping only: token validity is proven by the signature, nothing reads
// this cache to authenticate. A missing or unreachable Redis disables the
// service instead of failing requests.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(redisURL string) *RedisService {
	if redisURL == "" {
		return &RedisService{client: nil}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Invalid REDIS_URL, token bookkeeping disabled: %v", err)
		return &RedisService{client: nil}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, token bookkeeping disabled: %v", err)
		return &RedisService{client: nil}
	}

	log.Printf("Connected to Redis at %s", opt.Addr)
	return &RedisService{client: client}
}

func (r *RedisService) CacheToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil // disabled
	}
	return r.client.Set(ctx, "token:"+token, userID, ttl).Err()
}

func (r *RedisService) TokenOwner(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil
	}
	return r.client.Get(ctx, "token:"+token).Result()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("closing redis client: %w", err)
	}
	return nil
}
