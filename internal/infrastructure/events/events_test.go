package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleEvent = entities.ChangeEvent{
	Collection: entities.CollectionRequests,
	Operation:  entities.OperationUpdateStatus,
	EntityID:   "req-1",
	At:         time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
}

func TestRedisPublisher_Publish(t *testing.T) {
	db, mock := redismock.NewClientMock()
	payload, err := json.Marshal(sampleEvent)
	require.NoError(t, err)

	mock.ExpectPublish("marcenaria:changes", payload).SetVal(1)

	pub := NewRedisPublisher(db, "marcenaria:changes")
	require.NoError(t, pub.Publish(context.Background(), sampleEvent))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPublisher_PublishError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	payload, _ := json.Marshal(sampleEvent)
	mock.ExpectPublish("marcenaria:changes", payload).SetErr(errors.New("connection refused"))

	err := NewRedisPublisher(db, "marcenaria:changes").Publish(context.Background(), sampleEvent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewRedisClient(t *testing.T) {
	_, err := NewRedisClient("not a url")
	assert.Error(t, err)

	c, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Options().DB)
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, entities.ChangeEvent) error { return f.err }

func TestMultiPublisher(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	boom := errors.New("boom")
	multi := NewMultiPublisher().
		Add("log", LogPublisher{}).
		Add("failing", failingPublisher{err: boom}).
		Add("hub", hub)

	err := multi.Publish(context.Background(), sampleEvent)
	assert.ErrorIs(t, err, boom)

	select {
	case got := <-ch:
		assert.Equal(t, sampleEvent, got, "publishers after a failure still run")
	default:
		t.Fatalf("expected event on hub subscriber")
	}
}

func TestHub_DropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	for i := 0; i < subscriberBuffer+10; i++ {
		require.NoError(t, hub.Publish(context.Background(), sampleEvent))
	}
	assert.Len(t, ch, subscriberBuffer)

	hub.Unsubscribe(ch)
	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.Subscribers())
	_, open := <-ch
	for open {
		_, open = <-ch
	}
}
