package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "onboarding:store:"

// Redis guarda o snapshot sob onboarding:store:<sessionID>. O TTL é
// renovado a cada escrita (expiração rolante).
type Redis struct {
	client  *redis.Client
	session string
}

func NewRedis(client *redis.Client, sessionID string) *Redis {
	return &Redis{client: client, session: sessionID}
}

func (r *Redis) key() string {
	return keyPrefix + r.session
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(), data, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context) error {
	return r.client.Del(ctx, r.key()).Err()
}
