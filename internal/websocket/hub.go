package websocket

import (
	"context"
	"encoding/json"

	"ai-notecapture-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisChannel relays frames between instances sharing a Redis.
const RedisChannel = "notecapture:ws"

// Hub fans event frames out to every connected client. With a Redis client it
// also relays frames to hubs in other processes.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	rdb        *redis.Client
	instanceID string
	logger     logger.ILogger
}

type relayFrame struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Run owns the client set until ctx is done, then closes every client.
// Clients that join or leave afterwards are not waited for.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"client_id": client.ID,
				"clients":   len(h.clients),
			})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID})
			}

		case frame := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- frame:
				default:
					h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"client_id": client.ID})
					h.drop(client)
				}
			}
		}
	}
}

// join hands client to Run. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
}

// Broadcast queues a frame for local clients and relays it through Redis.
func (h *Hub) Broadcast(ctx context.Context, frame []byte) {
	select {
	case h.broadcast <- frame:
	case <-ctx.Done():
		return
	}

	if h.rdb == nil {
		return
	}
	payload, err := json.Marshal(relayFrame{Origin: h.instanceID, Message: frame})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(ctx, RedisChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Failed to relay frame", map[string]interface{}{"error": err.Error()})
	}
}

// Consume forwards every message on the given watermill topics to the
// clients. Payloads are event envelopes and go out unchanged.
func (h *Hub) Consume(ctx context.Context, sub message.Subscriber, topics ...string) error {
	for _, topic := range topics {
		messages, err := sub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}

		go func(topic string, messages <-chan *message.Message) {
			for msg := range messages {
				h.Broadcast(ctx, msg.Payload)
				msg.Ack()
			}
			h.logger.Debug("Hub", "Topic consumer stopped", map[string]interface{}{"topic": topic})
		}(topic, messages)
	}
	return nil
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, RedisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		var msg *redis.Message
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			msg = m
		}

		var frame relayFrame
		if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
			h.logger.Warn("Hub", "Malformed relay frame", map[string]interface{}{"error": err.Error()})
			continue
		}
		// own frames were already delivered locally
		if frame.Origin == h.instanceID {
			continue
		}
		select {
		case h.broadcast <- frame.Message:
		case <-ctx.Done():
			return
		}
	}
}
