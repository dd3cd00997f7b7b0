package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long an issued token stays valid without an explicit
// logout.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "auth_"

// SessionStore maps session tokens to user ids. Expiry is handled by the
// cache, not the application.
type SessionStore interface {
	Create(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// ConnectRedis opens the session cache and verifies it is reachable.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to Redis")
	return client, nil
}

// PingRedis reports whether the session cache is reachable.
func PingRedis(ctx context.Context, client *redis.Client) bool {
	return client.Ping(ctx).Err() == nil
}
