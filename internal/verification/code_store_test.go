package verification_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/verification"
)

func newTestStore(t *testing.T, ttl time.Duration) (*verification.CodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return verification.NewCodeStore(client, ttl), mr
}

func TestGenerateThenConsumeResolvesUser(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	code, err := store.Generate(context.Background(), "user-7")
	require.NoError(t, err)
	require.NotEmpty(t, code)

	userID, err := store.Consume(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)
}

func TestConsumeIsSingleUse(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	code, err := store.Generate(context.Background(), "user-7")
	require.NoError(t, err)

	_, err = store.Consume(context.Background(), code)
	require.NoError(t, err)

	_, err = store.Consume(context.Background(), code)
	assert.ErrorIs(t, err, verification.ErrCodeNotFound)
}

func TestConsumeUnknownCodeFails(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Consume(context.Background(), "never-issued")
	assert.ErrorIs(t, err, verification.ErrCodeNotFound)
}

func TestCodesExpire(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	code, err := store.Generate(context.Background(), "user-7")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Consume(context.Background(), code)
	assert.ErrorIs(t, err, verification.ErrCodeNotFound)
}
