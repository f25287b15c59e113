package verification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const codeKeyPrefix = "verify:code:"

// ErrCodeNotFound signals an unknown, expired, or already-consumed code.
var ErrCodeNotFound = errors.New("verification code not found")

// CodeStore issues one-time email verification codes backed by Redis.
// Codes expire after the configured TTL and are deleted on first use.
type CodeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCodeStore builds a store using the given client and code lifetime.
func NewCodeStore(client *redis.Client, ttl time.Duration) *CodeStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CodeStore{client: client, ttl: ttl}
}

// Generate creates and persists a fresh code for the user, returning it for
// inclusion in the verification email.
func (s *CodeStore) Generate(ctx context.Context, userID string) (string, error) {
	code := uuid.NewString()
	if err := s.client.Set(ctx, codeKeyPrefix+code, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Consume resolves a code to its user identifier and deletes it atomically,
// so each code verifies at most once.
func (s *CodeStore) Consume(ctx context.Context, code string) (string, error) {
	userID, err := s.client.GetDel(ctx, codeKeyPrefix+code).Result()
	if err == redis.Nil {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
