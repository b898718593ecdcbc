package sync

import (
	"context"
	"encoding/json"

	"luckydraw-backend/internal/common/logger"
	"luckydraw-backend/internal/platform/redis"
)

// RedisTransport broadcasts over a Redis pub/sub channel. This is the
// production equivalent of the browser BroadcastChannel: every replica on
// the host subscribes to one named channel, message order is FIFO per
// channel, and there is no backlog for late subscribers.
type RedisTransport struct {
	client  *redis.Client
	channel string
}

func NewRedisTransport(client *redis.Client, channel string) *RedisTransport {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisTransport{client: client, channel: channel}
}

func (t *RedisTransport) Publish(ctx context.Context, msg Message) error {
	return t.client.PublishJSON(ctx, t.channel, msg)
}

// Subscribe starts a consume goroutine that runs until ctx is cancelled.
// Malformed payloads are dropped with a warning; replication has no recovery
// path for them anyway.
func (t *RedisTransport) Subscribe(ctx context.Context, h Handler) error {
	pubsub := t.client.Client.Subscribe(ctx, t.channel)
	// Force the subscription to be established before returning so callers
	// do not publish into the void.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}

	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				logger.Info().Str("channel", t.channel).Msg("sync subscription stopped")
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var msg Message
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					logger.Warn().Err(err).Msg("dropping malformed sync message")
					continue
				}
				h(msg)
			}
		}
	}()
	return nil
}

func (t *RedisTransport) Close() error {
	return nil
}
