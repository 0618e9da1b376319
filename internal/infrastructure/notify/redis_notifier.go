package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"treatment_planner/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultChannel = "plan-notifications"
	publishTimeout = 2 * time.Second
)

// Publisher is the part of *redis.Client the notifier uses.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes notifications as JSON so that UI sessions watching a
// plan can show them. Events tagged with a plan go to "<channel>:<plan code>".
type RedisNotifier struct {
	client  Publisher
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client Publisher, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Success(ctx context.Context, message, detail string) {
	n.publish(ctx, newEvent(ctx, LevelSuccess, message, detail))
}

func (n *RedisNotifier) Warning(ctx context.Context, message, detail string) {
	n.publish(ctx, newEvent(ctx, LevelWarning, message, detail))
}

func (n *RedisNotifier) Error(ctx context.Context, message, detail string) {
	n.publish(ctx, newEvent(ctx, LevelError, message, detail))
}

func (n *RedisNotifier) Channel(planCode string) string {
	if planCode == "" {
		return n.channel
	}
	return n.channel + ":" + planCode
}

func (n *RedisNotifier) publish(ctx context.Context, e Event) {
	b, err := json.Marshal(e)
	if err != nil {
		log.Printf("[plan][notify] marshal failed err=%v", err)
		return
	}
	// Detached from ctx: an event raised at the end of a request must still go out.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.client.Publish(pctx, n.Channel(e.PlanCode), b).Err(); err != nil {
		log.Printf("[plan][notify] publish failed channel=%s err=%v", n.Channel(e.PlanCode), err)
	}
}
