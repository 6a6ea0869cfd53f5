package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sessionTTL        = 11 * time.Hour
	activeSpacePrefix = "active_space:"
)

type RedisSessionStorage struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

func NewSessionRedisStorage(client *redis.Client, log *zap.SugaredLogger) *RedisSessionStorage {
	return &RedisSessionStorage{client: client, log: log}
}

func (r *RedisSessionStorage) GetUserIdBySession(sessionID string) (userID string, ok bool) {
	v, err := r.client.Get(context.Background(), sessionID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Error(err)
		}
		return "", false
	}
	return v, true
}

func (r *RedisSessionStorage) StoreSession(sessionID string, userID string) {
	r.client.Set(context.Background(), sessionID, userID, sessionTTL)
}

func (r *RedisSessionStorage) DeleteSession(sessionID string) (ok bool) {
	r.client.Del(context.Background(), sessionID)
	r.client.Del(context.Background(), activeSpacePrefix+sessionID)
	return true
}

// StoreActiveSpace persists the session's active space selection; an empty
// id clears it back to the global context.
func (r *RedisSessionStorage) StoreActiveSpace(sessionID string, spaceID string) {
	key := activeSpacePrefix + sessionID
	if spaceID == "" {
		r.client.Del(context.Background(), key)
		return
	}
	r.client.Set(context.Background(), key, spaceID, sessionTTL)
}

func (r *RedisSessionStorage) GetActiveSpace(sessionID string) string {
	v, err := r.client.Get(context.Background(), activeSpacePrefix+sessionID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Error(err)
		}
		return ""
	}
	return v
}
