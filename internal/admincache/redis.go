package admincache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/templui/folio/internal/model"
)

const keyPrefix = "folio:admin:cache:" // folio:admin:cache:{session_id}

// Redis stores each session's rows as one JSON value that expires with the session.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	err = client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (r *Redis) Replace(ctx context.Context, sessionID string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	err = r.client.Set(ctx, keyPrefix+sessionID, data, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (r *Redis) Items(ctx context.Context, sessionID string) ([]model.Item, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var items []model.Item
	err = json.Unmarshal(data, &items)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return items, true, nil
}

func (r *Redis) Drop(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, keyPrefix+sessionID).Err()
}
