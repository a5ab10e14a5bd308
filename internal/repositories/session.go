package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
)

// SessionWriteRepository records issued tokens in Redis so an explicit
// logout can drop them. Directory data is never cached here.
type SessionWriteRepository struct {
	client *redis.Client
	exp    time.Duration // matches the token expiration
}

func NewSessionWriteRepository(client *redis.Client, expiration time.Duration) *SessionWriteRepository {
	return &SessionWriteRepository{client: client, exp: expiration}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

// Save stores the token issued for the user with the session TTL.
func (r *SessionWriteRepository) Save(ctx context.Context, userID int64, token string) error {
	key := sessionKey(userID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"error", err,
	)

	return err
}

// Delete removes the stored session for the user. Deleting an absent
// session is not an error.
func (r *SessionWriteRepository) Delete(ctx context.Context, userID int64) error {
	key := sessionKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session deleted",
		"key", key,
		"error", err,
	)

	return err
}
