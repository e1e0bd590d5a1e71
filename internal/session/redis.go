package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ulbra-election/voter/internal/domain"
)

const (
	tokenKeyPrefix = "session:token:"
	opTimeout      = 5 * time.Second
)

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to redis at the given URL and returns a registry whose
// tokens expire after ttl (0 = no expiry, matching redis semantics).
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Save(token domain.SessionToken, voterId domain.VoterId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.client.Set(ctx, tokenKeyPrefix+token, voterId, r.ttl).Err()
}

func (r *Redis) Resolve(token domain.SessionToken) (domain.VoterId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	voterId, err := r.client.Get(ctx, tokenKeyPrefix+token).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve token: %w", err)
	}
	return voterId, nil
}

func (r *Redis) Delete(token domain.SessionToken) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.client.Del(ctx, tokenKeyPrefix+token).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
