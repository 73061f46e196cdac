package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/store/memstore"
)

func TestPublisher_PersistsAndBroadcasts(t *testing.T) {
	st := memstore.New()
	hub := NewHub()
	pub := NewPublisher(st, hub)
	ctx := context.Background()

	live, cancel := hub.Subscribe("t1")
	defer cancel()

	require.NoError(t, pub.Publish(ctx, "t1", TypeStageStarted, StageStartedPayload{Stage: "implementation", Iteration: 1}))

	select {
	case env := <-live:
		assert.Equal(t, TypeStageStarted, env.Type)
		assert.Equal(t, int64(1), env.Seq)
		var payload StageStartedPayload
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Equal(t, "implementation", payload.Stage)
	case <-time.After(time.Second):
		t.Fatal("no live event delivered")
	}

	rows, err := st.ListEvents(ctx, "t1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, TypeStageStarted, rows[0].Type)
}

func TestPublisher_SequenceIsMonotonic(t *testing.T) {
	pub := NewPublisher(memstore.New(), NewHub())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, pub.Publish(ctx, "t1", TypeProgressUpdate, ProgressPayload{Progress: float64(i) / 5}))
	}
	require.NoError(t, pub.Publish(ctx, "other", TypeTaskCreated, nil))

	envs, err := pub.Replay(ctx, "t1", 0)
	require.NoError(t, err)
	require.Len(t, envs, 5)
	for i, env := range envs {
		assert.Equal(t, int64(i+1), env.Seq)
	}

	tail, err := pub.Replay(ctx, "t1", 3)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, int64(4), tail[0].Seq)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()

	// Never drained: fills its buffer, then broadcasts are dropped.
	_, cancelSlow := hub.Subscribe("t1")
	defer cancelSlow()

	fast, cancelFast := hub.Subscribe("t1")
	defer cancelFast()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Broadcast(Envelope{TaskID: "t1", Seq: int64(i + 1)})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on slow subscriber")
	}

	// The fast subscriber received up to its buffer without blocking
	// the publisher.
	received := 0
	for {
		select {
		case <-fast:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("t1")
	assert.Equal(t, 1, hub.SubscriberCount("t1"))

	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount("t1"))

	// Idempotent.
	cancel()
}

func TestPublishQuiet_SwallowsErrors(t *testing.T) {
	pub := NewPublisher(memstore.New(), NewHub())
	// Unmarshalable payload: function values cannot be marshaled.
	pub.PublishQuiet(context.Background(), "t1", TypeTaskCreated, func() {})

	envs, err := pub.Replay(context.Background(), "t1", 0)
	require.NoError(t, err)
	assert.Empty(t, envs)
}
