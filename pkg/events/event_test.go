package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := BaseEvent{Type: ContentAdded, Data: map[string]interface{}{"id": "c1"}, OccurredAt: at}

	raw, err := Marshal(in)
	require.NoError(t, err)

	out, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, ContentAdded, out.EventType())
	assert.Equal(t, "c1", out.Payload()["id"])
	assert.True(t, at.Equal(out.Timestamp()))
}

func TestWatermillPublisher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer bus.Close()

	messages, err := bus.Subscribe(ctx, TopicActivity)
	require.NoError(t, err)

	pub := NewWatermillPublisher(bus, TopicActivity)
	require.NoError(t, pub.Publish(ctx, New(NotebookCreated, map[string]interface{}{"name": "Research"})))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, NotebookCreated, msg.Metadata.Get("event_type"))
		ev, err := Unmarshal(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, "Research", ev.Payload()["name"])
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}
