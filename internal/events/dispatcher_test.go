package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/events"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var calls int
	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, _ events.Event) error {
		calls++
		return nil
	})
	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, _ events.Event) error {
		calls++
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventUserVerified, func(_ context.Context, _ events.Event) error {
		calls++
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "only user_registered handlers run, errors do not stop delivery")
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventPermitAuthorized})
	assert.NoError(t, err)
}
