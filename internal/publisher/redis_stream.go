package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fortuna/depthsheets/internal/store"
	"github.com/redis/go-redis/v9"
)

// RunStream is the Redis stream that receives one entry per generated batch
const RunStream = "depthsheets.runs"

// RedisStreamPublisher publishes run events to a Redis stream
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a publisher from an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// PublishRun appends a run summary to the run stream
func (p *RedisStreamPublisher) PublishRun(ctx context.Context, run *store.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: RunStream,
		MaxLen: 1000,
		Approx: true,
		Values: map[string]interface{}{
			"run_id":    run.RunID,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
