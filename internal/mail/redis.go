package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const outboxPrefix = "mail:outbox:"

// RedisTransport captures messages in a per-recipient Redis list instead of
// delivering them. Used by staging deployments.
type RedisTransport struct {
	client redis.Cmdable
	from   string
	ttl    time.Duration
}

type capturedMessage struct {
	Message
	From   string    `json:"from"`
	SentAt time.Time `json:"sentAt"`
}

func NewRedisTransport(client redis.Cmdable, from string, ttl time.Duration) *RedisTransport {
	return &RedisTransport{client: client, from: from, ttl: ttl}
}

func (t *RedisTransport) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(capturedMessage{Message: msg, From: t.from, SentAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	key := outboxPrefix + msg.To
	pipe := t.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.Expire(ctx, key, t.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("capturing mail to %s: %w", msg.To, err)
	}
	return nil
}

// Close leaves the shared client to its owner.
func (t *RedisTransport) Close() error { return nil }
