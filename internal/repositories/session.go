package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
)

// SessionRepository keeps per-account session state in Redis: the account
// type of the last issued user token and revocation markers for deleted accounts.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func accountTypeKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:account_type:%s", userID)
}

func revokedKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:revoked:%s", userID)
}

// Save records the account type for userID for as long as its token lives.
func (r *SessionRepository) Save(ctx context.Context, userID uuid.UUID, accountType string, ttl time.Duration) error {
	key := accountTypeKey(userID)
	err := r.client.Set(ctx, key, accountType, ttl).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"value", accountType,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// GetAccountType returns the recorded account type, or "" if none is recorded.
func (r *SessionRepository) GetAccountType(ctx context.Context, userID uuid.UUID) (string, error) {
	key := accountTypeKey(userID)
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("redis get",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// Revoke invalidates every token of userID issued within the last ttl and
// drops its session record.
func (r *SessionRepository) Revoke(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	key := revokedKey(userID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, "1", ttl)
		pipe.Del(ctx, accountTypeKey(userID))
		return nil
	})

	logger.Log.Infow("redis revoke",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokens of userID have been revoked.
func (r *SessionRepository) IsRevoked(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := revokedKey(userID)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("redis exists failed", "key", key, "error", err)
		return false, err
	}
	return n > 0, nil
}
