package notifications

import (
	"context"
	"log"
	"runtime/debug"

	"github.com/redis/go-redis/v9"
)

const (
	scopeChannelPrefix = "comments:scope:"
	broadcastChannel   = "events:broadcast"
)

// Notifier publishes live events into Redis channels so every instance's hub
// sees them. With a nil Redis client all operations are no-ops.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishScope sends an event payload to one comment scope's channel.
func (n *Notifier) PublishScope(ctx context.Context, scope, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, ScopeChannel(scope), payload).Err()
}

// PublishBroadcast sends a site-wide event payload to all connected clients.
func (n *Notifier) PublishBroadcast(ctx context.Context, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, broadcastChannel, payload).Err()
}

// StartPatternSubscriber subscribes to the scope pattern and the broadcast
// channel, calling onMessage for each incoming message.
func (n *Notifier) StartPatternSubscriber(
	ctx context.Context, onMessage func(channel string, payload string),
) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, scopeChannelPrefix+"*", broadcastChannel)
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in PatternSubscriber: %v\n%s", r, debug.Stack())
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// ScopeChannel derives the Redis channel name for a comment scope.
func ScopeChannel(scope string) string {
	return scopeChannelPrefix + scope
}
