package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"adpilot/internal/core/domain"
)

// Notifier broadcasts entity status changes over redis Pub/Sub.
type Notifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewNotifier constructs a Notifier publishing on channel.
func NewNotifier(client *redis.Client, channel string, logger *slog.Logger) *Notifier {
	return &Notifier{client: client, channel: channel, logger: logger}
}

// Notify publishes one change. Nobody listening is not an error.
func (n *Notifier) Notify(ctx context.Context, change domain.StatusChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, n.channel, payload).Err()
}

// Subscribe calls fn for every change published until ctx is done.
// Undecodable messages are logged and skipped.
func (n *Notifier) Subscribe(ctx context.Context, fn func(domain.StatusChange)) error {
	sub := n.client.Subscribe(ctx, n.channel)
	defer sub.Close()

	// Wait for the subscription to be confirmed before reading.
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var change domain.StatusChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				n.logger.Warn("skip status change", slog.String("payload", msg.Payload), slog.Any("error", err))
				continue
			}
			fn(change)
		}
	}
}
